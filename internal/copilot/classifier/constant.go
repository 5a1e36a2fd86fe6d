package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.copilot.classifier.Classify"
)

// PromptClassifier is the instruction template handed to the
// classification capability. The question is interpolated at the end.
const PromptClassifier = `You are an intent classifier for a Jira Refinement Copilot.

Identify:
- Primary intent
- Secondary intents (if any)
- Confidence score (0.0 to 1.0)

Return JSON ONLY.

Possible intents:
OBJECTIVE_INTENT
SCOPE_DEFINITION
ACCEPTANCE_CRITERIA
UI_UX_BEHAVIOUR
FIGMA_ALIGNMENT
EDGE_CASE_RISK_ANALYSIS
BUSINESS_RULE
DEPENDENCY_IMPACT
STORY_REFINEMENT
DEVELOPMENT_READINESS

User Question:
%s`

// Log messages
const (
	LogMsgCapabilityFailed = "classifier capability failed"
	LogMsgJSONParseFailed  = "failed to parse classifier output, degrading to STORY_REFINEMENT"
	LogMsgClassified       = "intent classified"
)
