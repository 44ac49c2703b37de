package controller

import (
	m "testreport.dev/pkg/testreport/internal/model"
)

func sampleResult() *m.Result {
	parser := m.NewSuite("parser")
	parser.SetDescription("Parser behaviour")

	ok := m.NewCase("TestEmpty")
	ok.SetStatus(m.StatusSuccess)
	parser.AddCase(ok)

	bad := m.NewCase("TestNested")
	bad.SetStatus(m.StatusFailure)
	bad.SetDetail("expected 2\ngot 3")
	parser.AddCase(bad)

	lexer := m.NewSuite("lexer")

	tok := m.NewCase("TestTokens")
	tok.SetStatus(m.StatusSuccess)
	lexer.AddCase(tok)

	lexer.AddCase(m.NewCase("TestSkipped"))

	result := m.NewResult()
	result.AddSuite(parser)
	result.AddSuite(lexer)

	return result
}
