package estimate

import (
	"fmt"
	"strings"

	"cerberus/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const NoEstimateText = "No estimate selected yet."

var printer = message.NewPrinter(language.AmericanEnglish)

// Money renders whole dollars with grouping and no fractional digits.
func Money(n int64) string {
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -n)
	}
	return "$" + printer.Sprintf("%d", n)
}

// Summary renders est as the multi-line text block shown on the contact page
// and sent with a submission. It has no side effects.
func Summary(est *models.DraftEstimate, biz models.Business) string {
	if est.IsEmpty() {
		return NoEstimateText
	}

	var lines []string
	if est.IsPostOnly() {
		lines = append(lines, fmt.Sprintf("Post-Only Service: %s (%s)", est.PostOnlyName, Money(est.PostOnlyPrice)))
	} else {
		lines = append(lines, fmt.Sprintf("Package: %s (%s)", est.PackageName, Money(est.BasePrice)))

		if len(est.AddonsFixed) > 0 {
			lines = append(lines, "", "Add-ons (fixed):")
			for _, a := range est.AddonsFixed {
				lines = append(lines, fmt.Sprintf("- %s (%s)", a.Name, Money(a.Price)))
			}
		}

		if len(est.AddonsQuoted) > 0 {
			lines = append(lines, "", "Add-ons (quoted/range, not yet confirmed):")
			for _, a := range est.AddonsQuoted {
				lines = append(lines, fmt.Sprintf("- %s (%s)", a.Name, a.PriceNote))
			}
		}

		if est.RushDays > 0 {
			lines = append(lines, "", fmt.Sprintf("Rush: %d day(s) — %s (cap %s)", est.RushDays, Money(est.RushCost), Money(RushCap)))
		}

		lines = append(lines, "", "Estimated total: "+Money(est.Total))
	}

	lines = append(lines, "", "Credit required: "+biz.CreditLine)
	return strings.Join(lines, "\n")
}
