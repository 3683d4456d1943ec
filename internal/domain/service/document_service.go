package service

import "context"

// ContractTemplater substitutes {TOKEN} fields in a docx template.
// Unsubstituted tokens survive in the output so a later pass can fill
// them once the missing values exist.
type ContractTemplater interface {
	Fill(templatePath, outputPath string, fields map[string]string) error
}

// PDFConverter turns a filled document into a distributable pdf. The
// conversion may take several seconds; it reports completion or failure
// explicitly through the returned error.
type PDFConverter interface {
	Convert(ctx context.Context, docxPath, outputDir string) (string, error)
}
