package summary

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"mrpending/internal/domain"
)

// DefaultShareBaseURL is the WhatsApp click-to-chat endpoint.
const DefaultShareBaseURL = "https://wa.me"

// Render builds the WhatsApp-ready summary text for one MR. It is a pure
// function of the MR subtree and the report date. Stockists with zero or
// negative outstanding are omitted to keep the message actionable; within an
// included stockist every bill is listed, zero-balance ones too. Order
// follows the document.
func Render(mr domain.MR, reportDate string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Outstanding Report - %s*\n", mr.Name)
	fmt.Fprintf(&b, "*As on:* %s\n", reportDate)
	fmt.Fprintf(&b, "*Total Outstanding:* ₹%s\n\n", FormatINR(mr.TotalOutstanding))

	for _, stockist := range mr.Stockists {
		if stockist.TotalOutstanding <= 0 {
			continue
		}
		fmt.Fprintf(&b, "*%s*\n", stockist.Name)
		fmt.Fprintf(&b, "Total: ₹%s\n", FormatINR(stockist.TotalOutstanding))
		for _, bill := range stockist.Bills {
			fmt.Fprintf(&b, "📄 %s | Bal: ₹%s | Due: %s | O/D: %d\n",
				bill.InvoiceNo, FormatINR(bill.Balance), bill.DueDate, bill.OverDueDays)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatINR formats an amount with Indian digit grouping: the last three
// digits form one group, every group before that has two digits
// (1234567 -> "12,34,567"). Amounts are rounded to two decimals and the
// fraction is shown only when non-zero.
func FormatINR(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	intPart := cents / 100
	fracPart := cents % 100

	out := groupIndian(strconv.FormatInt(intPart, 10))
	if fracPart > 0 {
		out += fmt.Sprintf(".%02d", fracPart)
	}
	if amount < 0 && cents > 0 {
		out = "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// Encode percent-encodes summary text for embedding in a share-target URL.
// Decode is its exact inverse: Decode(Encode(s)) == s for any text.
func Encode(text string) string {
	return url.QueryEscape(text)
}

// Decode returns the human-readable (clipboard) form of an encoded summary.
func Decode(encoded string) (string, error) {
	return url.QueryUnescape(encoded)
}

// ShareURL builds the WhatsApp share link for the given summary text.
func ShareURL(baseURL, text string) string {
	if baseURL == "" {
		baseURL = DefaultShareBaseURL
	}
	return strings.TrimSuffix(baseURL, "/") + "/?text=" + Encode(text)
}
