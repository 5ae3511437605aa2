package parser

import (
	"sort"
	"strconv"
	"strings"
)

// parseAmount converts a matched "$1,234.50" capture (sans the dollar sign)
// to a float. Unparseable input yields 0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// sumCosts adds map values in sorted-key order so repeated runs produce the
// same float result.
func sumCosts(m map[string]float64) float64 {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var total float64
	for _, k := range keys {
		total += m[k]
	}
	return total
}

// extractFinancialDetails enumerates monetary figures and derives the cost
// breakdowns and the annual contract value.
func extractFinancialDetails(text string) FinancialDetails {
	financial := FinancialDetails{Currency: "USD"}

	var lineItems []LineItem

	// "<Service Name> - $<rate>/<unit>", unit defaults to "hour".
	for _, m := range reServiceRate.FindAllStringSubmatch(text, -1) {
		service := strings.TrimSpace(reWhitespace.ReplaceAllString(strings.ReplaceAll(m[1], "\n", " "), " "))
		unitPrice := parseAmount(m[2])
		unit := strings.ToLower(m[3])
		if unit == "" {
			unit = "hour"
		}
		item := LineItem{
			Service:   service,
			Quantity:  1,
			Unit:      unit,
			UnitPrice: unitPrice,
		}
		if unit == "fixed" {
			item.MonthlyTotal = unitPrice
		}
		lineItems = append(lineItems, item)
	}

	// "<Service Name>: <N> hours ($<total>)" derives the unit price.
	for _, m := range reHourlyItem.FindAllStringSubmatch(text, -1) {
		hours, _ := strconv.Atoi(m[2])
		total := parseAmount(m[3])
		unitPrice := 0.0
		if hours > 0 {
			unitPrice = total / float64(hours)
		}
		lineItems = append(lineItems, LineItem{
			Service:      strings.TrimSpace(reWhitespace.ReplaceAllString(strings.ReplaceAll(m[1], "\n", " "), " ")),
			Quantity:     hours,
			Unit:         "hour",
			UnitPrice:    unitPrice,
			MonthlyTotal: total,
		})
	}
	financial.LineItems = lineItems

	monthlyCosts := map[string]float64{}
	if m := firstGroup(reMonthlyTotal, text); m != "" {
		monthlyCosts["Monthly Total"] = parseAmount(m)
	}

	oneTimeCosts := map[string]float64{}
	if m := firstGroup(reSetupFee, text); m != "" {
		oneTimeCosts["Setup Fee"] = parseAmount(m)
	}
	for _, item := range lineItems {
		if item.Unit == "fixed" {
			oneTimeCosts[item.Service] = item.UnitPrice
		}
	}

	if len(monthlyCosts) > 0 {
		financial.MonthlyCosts = monthlyCosts
	}
	if len(oneTimeCosts) > 0 {
		financial.OneTimeCosts = oneTimeCosts
	}
	financial.TotalMonthly = sumCosts(monthlyCosts)
	financial.TotalOneTime = sumCosts(oneTimeCosts)

	// Explicit annual value wins; otherwise derive from the monthly total
	// and the contract term (12 months when no term is stated).
	if m := firstGroup(reAnnualValue, text); m != "" {
		financial.AnnualContractValue = parseAmount(m)
	} else if financial.TotalMonthly > 0 {
		months := 12
		if t := firstGroup(reContractTerm, text); t != "" {
			if n, err := strconv.Atoi(t); err == nil {
				months = n
			}
		}
		financial.AnnualContractValue = financial.TotalMonthly * float64(months)
	}

	return financial
}
