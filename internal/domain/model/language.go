package model

type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
)

// Languages lists the selectable tags in display order.
var Languages = []Language{LangJavaScript, LangTypeScript, LangPython, LangJava, LangCpp}

var languageLabels = map[Language]string{
	LangJavaScript: "JavaScript",
	LangTypeScript: "TypeScript",
	LangPython:     "Python",
	LangJava:       "Java",
	LangCpp:        "C++",
}

// Canonical starter source per language. Selecting a language always resets
// the buffer to its template; user edits do not survive a switch.
var languageTemplates = map[Language]string{
	LangJavaScript: "// Write your JavaScript code here\nfunction solution() {\n  return \"\";\n}\n",
	LangTypeScript: "// Write your TypeScript code here\nfunction solution(): string {\n  return \"\";\n}\n",
	LangPython:     "# Write your Python code here\ndef solution():\n    return \"\"\n",
	LangJava:       "// Write your Java code here\npublic class Main {\n    public static void main(String[] args) {\n        // Your solution here\n    }\n}\n",
	LangCpp:        "// Write your C++ code here\n#include <iostream>\nint main() {\n    // Your solution here\n    return 0;\n}\n",
}

func (l Language) Valid() bool {
	_, ok := languageLabels[l]
	return ok
}

func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return string(l)
}

func (l Language) Template() string {
	return languageTemplates[l]
}

// ParseLanguage maps a user-supplied tag to a Language, ok=false when the tag
// is not one of the supported five.
func ParseLanguage(tag string) (Language, bool) {
	l := Language(tag)
	return l, l.Valid()
}
