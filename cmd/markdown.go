package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"
)

// printMarkdown renders md for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		logrus.Debugf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.Debugf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// output writes a report named name into the -output-dir folder, or prints
// it. Markdown reports are rendered for the terminal when printed.
func output(name string, content []byte) error {
	if *outputDir == "" {
		if filepath.Ext(name) == ".md" {
			printMarkdown(string(content))
		} else {
			fmt.Println(string(content))
		}
		return nil
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}
	path := filepath.Join(*outputDir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	logrus.Infof("wrote %s", path)
	return nil
}
