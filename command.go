package main

// commandKind enumerates the closed set of commands a request body can carry
type commandKind int

const (
	cmdList commandKind = iota
	cmdDownload
	cmdUpload
)

// command is the resolved form of a request body. Exactly one kind applies
// per request; the upload fields are only meaningful for cmdUpload.
type command struct {
	kind commandKind

	// cmdDownload
	downloadName string

	// cmdUpload
	input         string
	inputIsString bool
	filename      string
	hasFilename   bool
}

// resolveCommand determines the command once from the parsed body.
// Priority is fixed: an explicit cmd "list" wins, then a string download
// field, and everything else is treated as an upload. A body carrying both
// cmd:"list" and download therefore lists and ignores the download field.
func resolveCommand(body map[string]any) command {
	if cmd, ok := body["cmd"].(string); ok && cmd == "list" {
		return command{kind: cmdList}
	}

	if name, ok := body["download"].(string); ok {
		return command{kind: cmdDownload, downloadName: name}
	}

	c := command{kind: cmdUpload}
	if input, exists := body["input"]; exists {
		c.input, c.inputIsString = input.(string)
	}
	if filename, ok := body["filename"].(string); ok {
		c.filename = filename
		c.hasFilename = true
	}
	return c
}
