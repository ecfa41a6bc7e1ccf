package analysis

import (
	"strings"
)

// Segment is one labeled piece of the analysis request. Content is passed
// through verbatim; Label tells the model what the content is.
type Segment struct {
	Label   string
	Content string
}

// Payload is the ordered request handed to the generator.
type Payload struct {
	Segments          []Segment
	SystemInstruction string
}

const systemInstruction = `You are a professional financial analyst who specializes in analyzing company financial statements.
Provide clear, concise analysis focusing on:
1. Key financial metrics and their trends
2. Company's financial health
3. Areas of strength and concern
4. Recommendations for investors`

const instructionBlock = `Based on these financial statements:
1. Analyze the company's financial performance and health
2. Identify key trends in revenue, profitability, and major metrics
3. Calculate and interpret year-over-year growth rates
4. Highlight any red flags or areas of concern
5. Provide a summary of whether this company appears to be a good investment.
In your analysis, be sure to include numbers and percentages for e.g. year over year growth rates.`

// Assemble builds the payload: ticker header, caller segments in order, then
// the fixed instruction block. It performs no I/O.
func Assemble(ticker string, segments []Segment) Payload {
	out := make([]Segment, 0, len(segments)+2)
	out = append(out, Segment{
		Content: "Analyze these financial statements for " + strings.ToUpper(strings.TrimSpace(ticker)) + ":",
	})
	out = append(out, segments...)
	out = append(out, Segment{Content: instructionBlock})
	return Payload{Segments: out, SystemInstruction: systemInstruction}
}

// Parts flattens the payload into the ordered text list sent to the model.
// Each segment contributes its content followed by its label, if any.
func (p Payload) Parts() []string {
	parts := make([]string, 0, len(p.Segments)*2)
	for _, s := range p.Segments {
		parts = append(parts, s.Content)
		if s.Label != "" {
			parts = append(parts, s.Label)
		}
	}
	return parts
}

// StatementSegment labels raw statement content with its report title.
func StatementSegment(title string, content []byte) Segment {
	return Segment{Label: "This is the " + title + ".", Content: string(content)}
}

// QuestionSegment carries the user's question.
func QuestionSegment(question string) Segment {
	return Segment{
		Label:   "This is the question to answer using the statements above.",
		Content: strings.TrimSpace(question),
	}
}
