package usecase

// Log prefixes
const (
	LogPrefixRefine = "internal.copilot.usecase.Refine"
)

// Prompt section labels
const (
	LabelResponseStyle = "Response Style: "
	LabelTask          = "Task:"
	LabelContext       = "Context Extracted:"
	LabelQuestion      = "User Question:"
)

// AssumptionInstruction is included when the assumption gate fires.
const AssumptionInstruction = `If information is missing:
- List assumptions explicitly
- Ask clarification questions`

// Context-conditional warning blocks, appended in fixed order.
const (
	BlockFigmaEmphasis  = "⚠️ IMPORTANT: User mentioned Figma. Emphasize design alignment checks and verify against Figma mockups."
	BlockUISuggestFigma = "⚠️ NOTE: This is UI-related. Consider suggesting Figma validation if designs exist."
	BlockEdgeCaseFocus  = "⚠️ FOCUS: User is concerned about edge cases. Provide comprehensive risk analysis."
)

// Secondary-intent offer suffix pieces.
const (
	SecondaryOfferPrefix = "\n\nWould you also like help with: "
	SecondaryOfferSuffix = "?"
)
