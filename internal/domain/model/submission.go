package model

type Language string

const (
	LanguagePython Language = "python"
	LanguageJava   Language = "java"
	LanguageCpp    Language = "cpp"
)

// Languages lists the accepted submission languages in display order.
func Languages() []Language {
	return []Language{LanguagePython, LanguageJava, LanguageCpp}
}

func (l Language) Valid() bool {
	switch l {
	case LanguagePython, LanguageJava, LanguageCpp:
		return true
	}
	return false
}

// Extension is the expected source-file extension. The check against an
// uploaded file is advisory; file contents are never validated client-side.
func (l Language) Extension() string {
	switch l {
	case LanguagePython:
		return ".py"
	case LanguageJava:
		return ".java"
	case LanguageCpp:
		return ".cpp"
	}
	return ""
}

// TestResult is one per-case verdict returned by the judge. The judge
// guarantees results arrive in the ordinal order of the concatenated cases
// that were sent; reconciliation relies on that order, not on ids.
type TestResult struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	Output         string `json:"result"`
	Correct        bool   `json:"correct"`
	Timeout        string `json:"timeout"` // elapsed seconds, judge-formatted
}
