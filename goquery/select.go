package goquery

import (
	"iter"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyaa"
	"golang.org/x/net/html"
)

// first returns the first descendant of s matching selector.
func first(s *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil, &nyaa.SelectorError{Selector: selector, Path: pathTo(s)}
	}
	return found, nil
}

// all returns every descendant of s matching selector, in document order.
func all(s *goquery.Selection, selector string) iter.Seq2[int, *goquery.Selection] {
	return s.Find(selector).EachIter()
}

// firstParent returns the parent of the first descendant matching selector.
func firstParent(s *goquery.Selection, selector string) (*goquery.Selection, error) {
	found, err := first(s, selector)
	if err != nil {
		return nil, err
	}
	parent := found.Parent()
	if parent.Length() == 0 {
		return nil, &nyaa.SelectorError{Selector: selector + " (parent)", Path: pathTo(found)}
	}
	return parent, nil
}

// text returns the trimmed text of the first descendant matching selector.
func text(s *goquery.Selection, selector string) (string, error) {
	found, err := first(s, selector)
	if err != nil {
		return "", err
	}
	return trimmedText(found), nil
}

func trimmedText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// attr returns the value of a required attribute of s.
func attr(s *goquery.Selection, name string) (string, error) {
	v, ok := s.Attr(name)
	if !ok {
		return "", &nyaa.AttributeError{Name: name, Path: pathTo(s)}
	}
	return v, nil
}

// href resolves the href of s against base. A missing href resolves to base.
func href(s *goquery.Selection, base *url.URL) (string, error) {
	raw, ok := s.Attr("href")
	if !ok {
		return base.String(), nil
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", &nyaa.URLJoinError{Raw: raw, Err: err}
	}
	return base.ResolveReference(ref).String(), nil
}

// parentHref resolves the href of the parent of the first match of selector.
// Icons nested in anchors are easier to select than the anchors themselves.
func parentHref(s *goquery.Selection, selector string, base *url.URL) (string, error) {
	parent, err := firstParent(s, selector)
	if err != nil {
		return "", err
	}
	return href(parent, base)
}

// pathTo describes the ancestors of the first node of s from the document
// root down, annotating elements with their class attribute.
func pathTo(s *goquery.Selection) []string {
	if s.Length() == 0 {
		return nil
	}
	var path []string
	for n := s.Get(0); n != nil; n = n.Parent {
		path = append(path, describeNode(n))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func describeNode(n *html.Node) string {
	switch n.Type {
	case html.DocumentNode:
		return "root"
	case html.ElementNode:
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "class" {
				return n.Data + " (" + a.Val + ")"
			}
		}
		return n.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return "#node"
}
