package parser

// BuildOutstandingStatementPrompt returns the extraction instructions for an
// "Outstanding Statement" PDF of pending bills grouped by MR and stockist.
func BuildOutstandingStatementPrompt() string {
	return `You are an expert data extraction assistant specialized in financial statements.
Your task is to extract structured JSON data from a PDF "Outstanding Statement".

The PDF contains a list of Medical Representatives (MRs), their Stockists, and individual unpaid bills.

Structure the output strictly according to the schema:
1. Identify the Agency Name and Report Date (Outstanding as on...).
2. Identify each MR Section. MR sections usually start with a location and name in brackets (e.g., "BERHAMPORE-[AMIT DEY]") and have a total amount on the right.
3. Identify Stockists within MR sections (usually starting with a hyphen).
4. For each Stockist, extract the list of bills.
   - Map columns: INVOICE, DATE, BILL VALUE, PAID/ADJUSTED, BALANCE, DUE DATE, O/D.
   - Extract "Date of deposit" if mentioned, otherwise map 'Due Date' to 'dueDate'.
   - Ignore asterisks (*).
   - Ensure numbers are parsed correctly (remove commas).

If a value is 0.00, keep it as 0.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.`
}

// ExtractionRequestText is the user-turn text sent alongside the document.
const ExtractionRequestText = "Extract the outstanding statement data from this PDF."
