package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/highlight"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrInvalidEngine  = errors.New("invalid markdown engine")

	// Element tree serialization errors.
	ErrMissingValue    = htmlnode.ErrMissingValue
	ErrMissingTag      = htmlnode.ErrMissingTag
	ErrMissingChildren = htmlnode.ErrMissingChildren
	ErrInvalidNode     = htmlnode.ErrInvalidNode

	// Markdown parsing errors.
	ErrUnbalancedDelimiter = inline.ErrUnbalancedDelimiter
	ErrUnknownTextType     = inline.ErrUnknownTextType
	ErrMissingTitle        = block.ErrMissingTitle
	ErrNoMatchingBlockType = block.ErrNoMatchingBlockType

	// Template and asset errors.
	ErrInvalidTemplate  = pipeline.ErrInvalidTemplate
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidHighlight = highlight.ErrUnknownStyle
)
