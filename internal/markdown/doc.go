// Package markdown is the Markdown front end: a goldmark backed parser that
// lowers goldmark's AST into mdast nodes, plus the filesystem workflows that
// load Markdown files, split front matter and convert them to ADF.
package markdown
