package copilot

// Per-intent confidence thresholds. Confidence strictly below the bar
// triggers a clarifying question instead of an answer.
var IntentThresholds = map[Intent]float64{
	IntentObjective:            0.7,
	IntentScopeDefinition:      0.65,
	IntentAcceptanceCriteria:   0.6,
	IntentUIUXBehaviour:        0.6,
	IntentFigmaAlignment:       0.65,
	IntentEdgeCaseRiskAnalysis: 0.5, // lower for nuanced analysis
	IntentBusinessRule:         0.6,
	IntentDependencyImpact:     0.55,
	IntentStoryRefinement:      0.5, // lower for general refinement
	IntentDevelopmentReadiness: 0.6,
}

// DefaultThreshold applies when an intent has no configured bar.
const DefaultThreshold = 0.6

// Threshold returns the confidence bar for the intent, falling back to
// the STORY_REFINEMENT entry for unknown intents.
func Threshold(intent Intent) float64 {
	if t, ok := IntentThresholds[intent]; ok {
		return t
	}
	if t, ok := IntentThresholds[IntentStoryRefinement]; ok {
		return t
	}
	return DefaultThreshold
}

// Intent-specific clarifying questions, returned verbatim when
// confidence is below threshold.
var ClarifyingQuestions = map[Intent]string{
	IntentObjective: "I need a bit more clarity. Could you specify:\n" +
		"- What business goal does this feature support?\n" +
		"- Who are the primary users?\n" +
		"- What problem does this solve?",
	IntentScopeDefinition: "To define the scope clearly, please clarify:\n" +
		"- What functionality is included?\n" +
		"- What is explicitly out of scope?\n" +
		"- Are there any phase requirements?",
	IntentAcceptanceCriteria: "To create clear acceptance criteria, I need:\n" +
		"- What are the specific conditions to be met?\n" +
		"- What are the expected outcomes?\n" +
		"- Are there UI/UX or data validation requirements?",
	IntentUIUXBehaviour: "For UI/UX behavior, please specify:\n" +
		"- What user actions trigger this behavior?\n" +
		"- What visual feedback should users see?\n" +
		"- Are there error or loading states?",
	IntentFigmaAlignment: "To ensure Figma alignment, I need:\n" +
		"- Which Figma design/mockup should be referenced?\n" +
		"- Are there specific components or flows to validate?\n" +
		"- Are there any design system requirements?",
	IntentEdgeCaseRiskAnalysis: "For edge case analysis, help me understand:\n" +
		"- What are the expected normal conditions?\n" +
		"- What unusual inputs or scenarios concern you?\n" +
		"- Are there integration or data quality risks?",
	IntentBusinessRule: "To extract business rules clearly:\n" +
		"- What conditions must be met?\n" +
		"- What are the validation requirements?\n" +
		"- Are there any exceptions or special cases?",
	IntentDependencyImpact: "To identify dependencies, clarify:\n" +
		"- What other systems or features are affected?\n" +
		"- Are there API or data dependencies?\n" +
		"- What's the impact on existing functionality?",
	IntentStoryRefinement: "To refine this story, I need more context:\n" +
		"- What aspect needs refinement (clarity, completeness, readiness)?\n" +
		"- Are there specific concerns or gaps?\n" +
		"- What level of detail is needed?",
	IntentDevelopmentReadiness: "To assess development readiness:\n" +
		"- Have all dependencies been identified?\n" +
		"- Are acceptance criteria defined?\n" +
		"- Are there any open questions or blockers?",
}

// ClarifyingQuestion returns the clarifying text for the intent,
// falling back to the STORY_REFINEMENT entry for unknown intents.
func ClarifyingQuestion(intent Intent) string {
	if q, ok := ClarifyingQuestions[intent]; ok {
		return q
	}
	return ClarifyingQuestions[IntentStoryRefinement]
}

// Intent-specific task templates for the generation prompt.
var ModePrompts = map[Intent]string{
	IntentObjective: "Explain the objective and business purpose.\n" +
		"Focus on: WHY this feature exists, WHO benefits, and WHAT problem it solves.",
	IntentScopeDefinition: "Define in-scope and out-of-scope items.\n" +
		"Structure: IN SCOPE (what's included), OUT OF SCOPE (what's excluded), " +
		"ASSUMPTIONS (what's assumed but unconfirmed).",
	IntentAcceptanceCriteria: "Generate clear Given/When/Then acceptance criteria.\n\n" +
		"Template:\n" +
		"- GIVEN [precondition/context]\n" +
		"- WHEN [action/trigger]\n" +
		"- THEN [expected outcome]\n\n" +
		"Example:\n" +
		"- GIVEN a user is on the login page\n" +
		"- WHEN they enter valid credentials and click 'Login'\n" +
		"- THEN they should be redirected to the dashboard",
	IntentUIUXBehaviour: "Describe expected UI behaviour and states.\n" +
		"Include: Default state, Loading state, Success state, Error state, " +
		"Edge cases (empty, disabled, etc.)",
	IntentFigmaAlignment: "List Figma design checks for alignment.\n" +
		"Verify: Component spacing, Typography, Colors, Icons, " +
		"Interaction states (hover, active, disabled), Responsive behavior",
	IntentEdgeCaseRiskAnalysis: "Identify edge cases and risks.\n" +
		"Consider: Invalid inputs, Boundary conditions, System failures, " +
		"Integration issues, Performance constraints, Security vulnerabilities",
	IntentBusinessRule: "Extract business rules.\n" +
		"Format: IF [condition] THEN [action/outcome] ELSE [alternative]",
	IntentDependencyImpact: "Identify dependencies and impacts.\n" +
		"Categories: System dependencies, Data dependencies, " +
		"Feature dependencies, API dependencies, Impact on existing features",
	IntentStoryRefinement: "Improve clarity and readiness of the requirement.\n" +
		"Check: Clear objective, Defined scope, Acceptance criteria, " +
		"Dependencies identified, Assumptions documented",
	IntentDevelopmentReadiness: "Assess if ready for development and list gaps.\n" +
		"Checklist: ✓/✗ Clear requirements, ✓/✗ Acceptance criteria defined, " +
		"✓/✗ Dependencies identified, ✓/✗ Designs available, ✓/✗ Technical approach agreed",
}

// ModePrompt returns the task template for the intent, falling back to
// the STORY_REFINEMENT entry for unknown intents.
func ModePrompt(intent Intent) string {
	if p, ok := ModePrompts[intent]; ok {
		return p
	}
	return ModePrompts[IntentStoryRefinement]
}

// MasterPrompt is the system instruction block of every generation prompt.
const MasterPrompt = `You are a Senior Business Analyst, Product Owner, and Jira Coach assistant.

Your role is to help refine Jira tickets by analysing:
- Business intent
- Functional scope
- UI/UX behaviour (including Figma expectations)
- Acceptance criteria
- Edge cases, risks, and dependencies

Rules:
- Understand the user's intent first.
- Adapt response style based on the question.
- Do NOT assume missing requirements.
- Clearly list assumptions when information is missing.
- Ask clarification questions when needed.
- Provide Jira-ready, practical outputs.

You are a thinking partner, not a decision authority.`

// Degraded confidence values. Each failure mode gets a distinct value
// so diagnostics can tell them apart without raising.
const (
	ConfidenceCapabilityFailure = 0.3 // classifier capability failed
	ConfidenceParseFailure      = 0.4 // classifier output not parseable
	ConfidenceDefault           = 0.5 // confidence field absent
)

// Fixed user-facing apology texts.
const (
	MsgGenerationFailure = "I apologize, but I encountered an error generating the response. " +
		"Please try rephrasing your question or contact support if the issue persists."

	MsgPipelineFailure = "I apologize, but I encountered an unexpected error processing your request. " +
		"Please try rephrasing your question or contact support if the issue persists."
)
