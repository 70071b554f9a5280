package proxy

import (
	"fmt"

	"google.golang.org/genai"
)

const (
	analyzeTemperature  = 0.4
	analyzeMaxTokens    = 1024
	generateTemperature = 0.3
	generateMaxTokens   = 200

	analyzePrompt = "Analyze this architecture for sonic translation."

	// NotFoundSentence is the model's answer when it knows no real example.
	// It is relayed as a normal result.
	NotFoundSentence = "archive data unavailable. please try another object."
)

const sonicSystemInstruction = `
You are a Sonic Architect. Your task is to analyze architectural images (floor plans, interior photos, building sketches) and translate their visual properties into a complete musical composition profile.

Analyze the image for:
1. Volume/Space: Estimated physical volume. A small closet is 0.1, a cathedral is 1.0.
2. Brightness/Light: Amount of natural light. Dark/Cave is 0.1, Glasshouse is 1.0.
3. Complexity: Visual noise and structural detail. Minimalist is 0.1, Baroque is 1.0.
4. Materials: Dominant materials.
5. Detected Features: specific visual elements (e.g., "Spiral staircase", "Open kitchen", "Corinthian columns", "Drafting lines").
6. Musical Parameters:
   - Key: A musical key that fits the vibe (e.g., "C Minor", "F# Major", "E Dorian").
   - Tempo: BPM between 60 and 140.
   - Genre: A generic style descriptor (e.g., "Deep House", "Ambient Drone", "Classical Minimalist", "Industrial", "Jazz Noir").

Return strictly JSON.
`

// historianPrompt asks for one verified counter-archetype for input
func historianPrompt(input string) string {
	return fmt.Sprintf(`
      You are a strict design historian.
      The user provides an everyday object or concept: "%s".

      Task: Identify a REAL, VERIFIED avant-garde design object or artwork from history that challenged the archetype of this concept.

      CRITICAL RULES:
      1. Do NOT hallucinate. Do NOT invent artworks, products, or dates. Verify the existence of the object before answering.
      2. If you cannot find a specific, famous example (e.g. from movements like Droog, Memphis, Bauhaus, Dada, etc.), strictly reply with: "%s"
      3. If a valid example exists, explain strictly HOW it challenged the norm.

      Format: Minimalist, sophisticated, lower-case aesthetic. Max 3 sentences.
    `, input, NotFoundSentence)
}

// sonicFields lists the analysis fields in the order the schema requires them
var sonicFields = []string{
	"volume",
	"brightness",
	"complexity",
	"materials",
	"mood",
	"suggestedKey",
	"tempo",
	"genre",
	"detectedFeatures",
	"architecturalDescription",
}

func sonicSchema() *genai.Schema {
	number := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"volume":       number("0.0 to 1.0 representing physical space size"),
			"brightness":   number("0.0 to 1.0 representing light and openness"),
			"complexity":   number("0.0 to 1.0 representing visual detail density"),
			"materials":    str("Dominant materials visible"),
			"mood":         str("Emotional atmosphere"),
			"suggestedKey": str("Musical key (e.g. C Minor)"),
			"tempo":        number("BPM"),
			"genre":        str("Musical genre style"),
			"detectedFeatures": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 3-5 specific visual elements found in the image",
			},
			"architecturalDescription": str("A poetic description of the space's acoustic qualities"),
		},
		Required: sonicFields,
	}
}
