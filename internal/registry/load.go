package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
	"github.com/specialistvlad/checkoutfields/internal/fsutil"
	"github.com/specialistvlad/checkoutfields/internal/model"
)

// DefinitionExtensions lists the file extensions LoadFieldsRecursively reads.
var DefinitionExtensions = []string{".hcl", ".yaml", ".yml", ".json"}

// LoadFieldsRecursively discovers definition files under each path and
// registers their fields in file order, then declaration order.
func (r *Registry) LoadFieldsRecursively(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, root := range paths {
		if root == "" {
			continue
		}
		logger.Debug("Registry loading definitions from path...", "path", root)
		found, err := fsutil.FindFilesByExtension(root, DefinitionExtensions...)
		if err != nil {
			logger.Error("Failed to walk definitions path", "path", root, "error", err)
			return fmt.Errorf("failed to walk definitions path %s: %w", root, err)
		}
		filePaths = append(filePaths, found...)
	}

	if len(filePaths) == 0 {
		logger.Warn("No field definition files found", "paths", paths)
		return nil
	}

	logger.Debug("Found definition files to load", "files", filePaths)

	parser := hclparse.NewParser()
	before := r.Len()

	for _, filePath := range filePaths {
		defs, err := decodeFile(ctx, parser, filePath)
		if err != nil {
			return err
		}
		for _, def := range defs {
			r.Register(def)
		}
		logger.Debug("Successfully loaded definitions from file", "file", filePath, "count", len(defs))
	}

	logger.Info("Field definitions loaded.", "files", len(filePaths), "fields_loaded", r.Len()-before)
	return nil
}

func decodeFile(ctx context.Context, parser *hclparse.Parser, filePath string) ([]model.FieldDefinition, error) {
	if fsutil.HasExtension(filePath, ".hcl") {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}
		defs, diags := model.ParseFieldFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to process field definitions in %s: %w", filePath, diags)
		}
		return defs, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", filePath, err)
	}

	format := model.FormatYAML
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		format = model.FormatJSON
	}
	return model.DecodeFieldDocument(ctx, data, format, filePath)
}
