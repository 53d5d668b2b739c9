package mock

import "github.com/fwojciec/nyaa"

var _ nyaa.Parser = (*Parser)(nil)

// Parser is a mock implementation of nyaa.Parser.
type Parser struct {
	ParseFn func(html string, baseURL string) (*nyaa.Results, error)
}

func (p *Parser) Parse(html string, baseURL string) (*nyaa.Results, error) {
	return p.ParseFn(html, baseURL)
}
