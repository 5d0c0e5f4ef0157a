// Package knowledge holds a small static base of Tamil Nadu real estate facts
// and picks the sections relevant to a free-text question.
package knowledge

import "strings"

// Topic is one section of the base, selected when any keyword appears in
// the lowercased query.
type Topic struct {
	Name     string
	Keywords []string
	Body     string
}

// Base is an ordered list of topics; matches are returned in this order.
type Base []Topic

// Default is the built-in Tamil Nadu base.
var Default = Base{
	{
		Name:     "registration",
		Keywords: []string{"register", "registration", "sub-registrar", "பதிவு"},
		Body: `PROPERTY REGISTRATION PROCESS:
1. Document Verification - Verify all property documents including title deed, encumbrance certificate (EC), tax receipts
2. Sale Agreement - Draft and execute sale agreement on stamp paper
3. Payment - Pay stamp duty and registration fees
4. Sub-Registrar Office - Visit the jurisdictional Sub-Registrar office
5. Biometric Verification - Both parties undergo biometric verification
6. Document Submission - Submit all required documents
7. Registration - Complete registration process and receive registered sale deed
8. Mutation - Apply for property tax mutation with local body`,
	},
	{
		Name:     "documents",
		Keywords: []string{"document", "papers", "ஆவணம்", "ஆவணங்கள்"},
		Body: `REQUIRED DOCUMENTS:
Buyer: PAN Card, Aadhaar Card, Address Proof, Passport-size photographs, Bank account details (for loan cases)
Seller: Original Sale Deed / Title Deed, Encumbrance Certificate (EC) for last 13-30 years, Property Tax Receipts (last 3 years), Approved Building Plan (for constructed properties), Completion Certificate (if applicable)
Property: Parent Document (previous sale deed), Patta and Chitta (land ownership records), Survey Number details, Layout Approval from DTCP/CMDA (for plots)`,
	},
	{
		Name:     "loan",
		Keywords: []string{"loan", "bank", "finance", "கடன்", "வங்கி"},
		Body: `BANK LOAN INFORMATION:
Eligibility: Age: 21-65 years (varies by bank), Income: Stable monthly income (salaried/self-employed), Credit Score: Minimum 750 recommended
Process: 1. Loan application and eligibility check, 2. Property document verification by bank, 3. Property valuation by bank-approved valuers, 4. Legal verification of title`,
	},
	{
		Name:     "stamp_duty",
		Keywords: []string{"stamp", "duty", "fee", "charges", "முத்திரை"},
		Body: `STAMP DUTY & REGISTRATION:
Stamp Duty: 7% of property value (for properties above ₹50 lakhs in urban areas)
Registration Fee: 1% of property value (maximum ₹1 lakh)
Women Benefit: 2% discount on stamp duty for properties registered in women's names`,
	},
	{
		Name:     "measurement",
		Keywords: []string{"cent", "ground", "acre", "gunta", "sqft", "square feet", "measurement", "size", "area"},
		Body: `LAND MEASUREMENT UNITS IN TAMIL NADU:
Cent: 1 cent = 435.6 square feet = 40.47 square meters - Commonly used for residential plots and small land parcels
Ground: 1 ground = 2,400 square feet = 222.97 square meters - 1 ground = approximately 5.5 cents
Acre: 1 acre = 43,560 square feet = 4,047 square meters = 100 cents
Common conversions: 1 cent = 435.6 sq ft, 1 ground = 2,400 sq ft = 5.5 cents, 1 acre = 100 cents = 43,560 sq ft`,
	},
	{
		Name:     "authorities",
		Keywords: []string{"tnrera", "rera", "dtcp", "cmda", "authority"},
		Body: `KEY AUTHORITIES:
TNRERA: Regulates real estate projects
DTCP: Approves layouts outside Chennai
CMDA: Planning authority for Chennai`,
	},
}

// Match returns the topics whose keywords occur in query.
func (b Base) Match(query string) []Topic {
	q := strings.ToLower(query)
	var out []Topic
	for _, t := range b {
		for _, kw := range t.Keywords {
			if strings.Contains(q, kw) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ContextFor joins the bodies of all matching topics with a blank line. It
// returns "" when nothing matches.
func (b Base) ContextFor(query string) string {
	topics := b.Match(query)
	parts := make([]string, 0, len(topics))
	for _, t := range topics {
		parts = append(parts, t.Body)
	}
	return strings.Join(parts, "\n\n")
}
