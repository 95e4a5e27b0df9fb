package cli

import (
	"fmt"
	"os"
	"os/exec"
)

// externalEditor holds the article body and hands it to the user's $EDITOR
// through a temp file.
type externalEditor struct {
	content string
}

func newExternalEditor() *externalEditor {
	return &externalEditor{}
}

func (e *externalEditor) Content() string     { return e.content }
func (e *externalEditor) SetContent(s string) { e.content = s }

func (e *externalEditor) Edit() error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	f, err := os.CreateTemp("", "newsadmin-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(e.content); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", editor, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read temp file: %w", err)
	}
	e.content = string(edited)
	return nil
}
