package document

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"subleasehub/internal/domain/service"
	"subleasehub/pkg/logger"
)

type libreOfficeConverter struct {
	binary string
}

func NewLibreOfficeConverter(binary string) service.PDFConverter {
	return &libreOfficeConverter{binary: binary}
}

// Convert shells out to the office binary in headless mode. The
// conversion can take several seconds; completion is signalled by the
// process exit plus the output file existing, failure by an error.
func (c *libreOfficeConverter) Convert(ctx context.Context, docxPath, outputDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary,
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outputDir,
		docxPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("pdf conversion failed: %v: %s", err, string(output))
		return "", fmt.Errorf("pdf conversion failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	pdfPath := filepath.Join(outputDir, base+".pdf")

	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("converter exited but %s was not created: %w", pdfPath, err)
	}

	return pdfPath, nil
}
