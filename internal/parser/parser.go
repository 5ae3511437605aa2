// Package parser extracts structured business data from free-text contract
// documents using a fixed library of matching rules, and scores each result
// for completeness. Extraction never fails: unmatched patterns yield absent
// or default values, so any string input produces a well-formed record.
package parser

import "log/slog"

// Parser runs the extraction pipeline. It holds no per-call state and is
// safe for concurrent use across documents.
type Parser struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse runs the six field extractors over text, then gap analysis and
// scoring, and assembles the aggregate record. The extractors have no data
// dependency on each other; gap analysis and scoring join on all of them.
func (p *Parser) Parse(text string) ExtractedData {
	parties := extractParties(text)
	financial := extractFinancialDetails(text)
	payment := extractPaymentStructure(text)
	account := extractAccountInfo(text)
	revenue := extractRevenueClassification(text)
	sla := extractSLATerms(text)

	data := ExtractedData{
		Parties:               parties,
		AccountInfo:           account,
		FinancialDetails:      financial,
		PaymentStructure:      payment,
		RevenueClassification: revenue,
		SLATerms:              sla,
		GapAnalysis:           analyzeGaps(parties, financial, payment, sla),
	}
	data.ConfidenceScore = Score(data)

	p.logger.Debug("contract parsed",
		"text_bytes", len(text),
		"line_items", len(financial.LineItems),
		"missing_fields", len(data.GapAnalysis.MissingFields),
		"confidence", data.ConfidenceScore,
	)
	return data
}
