package cli

import (
	"context"
	"fmt"

	"github.com/pluqqy/pluqqy-columns/internal/config"
	"github.com/pluqqy/pluqqy-columns/internal/logging"
	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/document"
	"github.com/pluqqy/pluqqy-columns/pkg/editor"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// DefaultTools is the tool registry handed to every column editor.
var DefaultTools = columns.ToolRegistry{
	"paragraph": map[string]interface{}{"inlineToolbar": true},
	"header":    map[string]interface{}{"levels": []int{2, 3}},
}

// CommandContext manages settings, logging and the document a command works on
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
	Logger     *logging.Logger
}

// NewCommandContext loads settings and opens the log
func NewCommandContext(configPath string) (*CommandContext, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(settings.Log.Path, settings.Log.Level)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		ConfigPath: configPath,
		Settings:   settings,
		Logger:     logger,
	}, nil
}

// Close releases the log file
func (c *CommandContext) Close() error {
	return c.Logger.Close()
}

// EngineOptions builds document engine options from the settings
func (c *CommandContext) EngineOptions() document.Options {
	return document.Options{
		EditorFactory: editor.Factory(editor.Options{
			ShowLineNumbers: c.Settings.Editor.ShowLineNumbers,
			Placeholder:     "Type here…",
		}),
		Tools:        DefaultTools,
		MinHeight:    c.Settings.Editor.MinHeight,
		DrainTimeout: c.Settings.Save.DrainTimeout,
		ReadOnly:     c.Settings.Editor.ReadOnly,
		Logger:       c.Logger.Logger,
	}
}

// OpenDocument reads path and returns a rendered engine for it
func (c *CommandContext) OpenDocument(ctx context.Context, path string) (*document.Engine, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	doc, err := files.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	engine, err := document.New(doc, c.EngineOptions())
	if err != nil {
		return nil, err
	}
	if err := engine.Render(ctx); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	c.Logger.Debug("document opened", "path", path, "columns_blocks", len(engine.Blocks()))
	return engine, nil
}

// SaveDocument drains the engine and writes the document back to its file
func (c *CommandContext) SaveDocument(ctx context.Context, engine *document.Engine) (*models.Document, error) {
	doc, err := engine.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := files.WriteDocument("", doc); err != nil {
		return nil, err
	}
	return doc, nil
}
