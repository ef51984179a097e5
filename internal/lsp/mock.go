package lsp

import "fmt"

// The generators below produce the session's canned language intelligence.
// They are pure functions of their inputs so that identical requests yield
// identical responses; do not introduce randomness, time, or document
// content into them.

// completionItems returns the fixed, ordered completion list.
func completionItems() []CompletionItem {
	return []CompletionItem{
		{
			Label:            "log",
			Kind:             CompletionItemKindFunction,
			Detail:           "console.log(message)",
			Documentation:    markdownDoc("Prints a message to the console."),
			InsertText:       "console.log($1)",
			InsertTextFormat: InsertTextFormatSnippet,
		},
		{
			Label:            "function",
			Kind:             CompletionItemKindSnippet,
			Detail:           "function definition",
			Documentation:    markdownDoc("Defines a new function."),
			InsertText:       "function ${1:name}(${2:params}) {\n\t$0\n}",
			InsertTextFormat: InsertTextFormatSnippet,
		},
		{
			Label:            "for",
			Kind:             CompletionItemKindSnippet,
			Detail:           "for loop",
			Documentation:    markdownDoc("Indexed loop over a range."),
			InsertText:       "for (let ${1:i} = 0; ${1:i} < ${2:length}; ${1:i}++) {\n\t$0\n}",
			InsertTextFormat: InsertTextFormatSnippet,
		},
		{
			Label:            "if",
			Kind:             CompletionItemKindSnippet,
			Detail:           "if statement",
			Documentation:    markdownDoc("Conditional statement."),
			InsertText:       "if (${1:condition}) {\n\t$0\n}",
			InsertTextFormat: InsertTextFormatSnippet,
		},
		{
			Label:            "variable",
			Kind:             CompletionItemKindVariable,
			Detail:           "local variable",
			Documentation:    markdownDoc("A variable in the current scope."),
			InsertText:       "variable",
			InsertTextFormat: InsertTextFormatPlainText,
		},
		{
			Label:            "class",
			Kind:             CompletionItemKindClass,
			Detail:           "class definition",
			Documentation:    markdownDoc("Defines a new class."),
			InsertText:       "class ${1:Name} {\n\t$0\n}",
			InsertTextFormat: InsertTextFormatSnippet,
		},
	}
}

func markdownDoc(text string) *MarkupContent {
	return &MarkupContent{Kind: MarkupKindMarkdown, Value: text}
}

// definitionLocation returns the fixed-offset mock definition for a
// position: one line up, spanning from one character before to five past
// the requested character. Not a real symbol lookup.
func definitionLocation(uri DocumentURI, pos Position) Location {
	return Location{
		URI: uri,
		Range: Range{
			Start: Position{Line: pos.Line - 1, Character: pos.Character - 1},
			End:   Position{Line: pos.Line - 1, Character: pos.Character + 5},
		},
	}
}

// hoverContent returns the markdown hover for a position together with a
// one-character-wide range at it.
func hoverContent(pos Position) Hover {
	value := fmt.Sprintf(
		"```javascript\nsymbol: any\n```\n\nMock hover for line %d, column %d.",
		pos.Line, pos.Character,
	)
	return Hover{
		Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: value},
		Range: &Range{
			Start: pos,
			End:   Position{Line: pos.Line, Character: pos.Character + 1},
		},
	}
}

// diagnosticsList returns the fixed synthetic diagnostics: one unused
// variable warning and two errors, at fixed ranges independent of the
// actual document content.
func diagnosticsList() []Diagnostic {
	return []Diagnostic{
		{
			Range: Range{
				Start: Position{Line: 2, Character: 4},
				End:   Position{Line: 2, Character: 13},
			},
			Severity: DiagnosticSeverityWarning,
			Source:   "smartide",
			Message:  "Unused variable 'unusedVar'",
		},
		{
			Range: Range{
				Start: Position{Line: 5, Character: 20},
				End:   Position{Line: 5, Character: 21},
			},
			Severity: DiagnosticSeverityError,
			Source:   "smartide",
			Message:  "Missing semicolon",
		},
		{
			Range: Range{
				Start: Position{Line: 8, Character: 8},
				End:   Position{Line: 8, Character: 20},
			},
			Severity: DiagnosticSeverityError,
			Source:   "smartide",
			Message:  "Undefined variable 'undefinedVar'",
		},
	}
}
