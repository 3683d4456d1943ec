package document

import (
	"fmt"

	"github.com/nguyenthenguyen/docx"

	"subleasehub/internal/domain/service"
)

type docxTemplater struct{}

func NewDocxTemplater() service.ContractTemplater {
	return &docxTemplater{}
}

// Fill replaces {KEY} tokens with the given values. Tokens without an
// entry in fields are left in place, which is what lets an unsigned
// contract be re-rendered later with the signature filled in.
func (t *docxTemplater) Fill(templatePath, outputPath string, fields map[string]string) error {
	reader, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to open template %s: %w", templatePath, err)
	}
	defer reader.Close()

	doc := reader.Editable()
	for key, value := range fields {
		token := "{" + key + "}"
		if err := doc.Replace(token, value, -1); err != nil {
			return fmt.Errorf("failed to substitute %s: %w", token, err)
		}
	}

	if err := doc.WriteToFile(outputPath); err != nil {
		return fmt.Errorf("failed to write filled document: %w", err)
	}

	return nil
}
