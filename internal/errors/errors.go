// Package errors provides standardized error handling for texwire.
// It defines the error kinds the tool distinguishes (filename parse
// failures, unknown texture tokens, scene-graph call failures, bad
// configuration) and helpers for consistent creation and wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Parse error kinds
	ParseFailed
	// Texture error kinds
	UnknownTextureKind
	KindNotEnabled
	// Scene error kinds
	NodeCreateFailed
	ConnectFailed
	AttrSetFailed
	MaterialNotFound
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// ApplicationError is the base error type for all texwire errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ParseError reports a filename that does not match the naming schema
type ParseError struct {
	ApplicationError
	file string
}

// NewParseError creates a new parse error for a file
func NewParseError(msg, file string, err error) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: ParseFailed},
		file:             file,
	}
}

// Error returns the parse error message
func (e *ParseError) Error() string {
	if e.file != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.file, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.file)
	}
	return e.ApplicationError.Error()
}

// File returns the file name associated with the error
func (e *ParseError) File() string {
	return e.file
}

// TextureError reports a texture that could not be wired. It carries
// the material, the filename token, and the texture file path so the
// diagnostic can name all three.
type TextureError struct {
	ApplicationError
	material string
	token    string
	path     string
}

// NewTextureError creates a new texture error
func NewTextureError(msg, material, token, path string, kind ErrorKind) *TextureError {
	return &TextureError{
		ApplicationError: ApplicationError{msg: msg, kind: kind},
		material:         material,
		token:            token,
		path:             path,
	}
}

// Error returns the texture error message
func (e *TextureError) Error() string {
	return fmt.Sprintf("%s: material=%s texture=%s file=%s", e.msg, e.material, e.token, e.path)
}

// Material returns the material name associated with the error
func (e *TextureError) Material() string {
	return e.material
}

// Token returns the filename token associated with the error
func (e *TextureError) Token() string {
	return e.token
}

// Path returns the texture file path associated with the error
func (e *TextureError) Path() string {
	return e.path
}

// SceneError reports a failed scene-graph call. A scene error aborts
// the current material's build but never the whole batch.
type SceneError struct {
	ApplicationError
	node string
	op   string
}

// NewSceneError creates a new scene error
func NewSceneError(msg string, kind ErrorKind, err error) *SceneError {
	return &SceneError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
	}
}

// WithNode attaches the node the failed call was addressed to
func (e *SceneError) WithNode(node string) *SceneError {
	e.node = node
	return e
}

// WithOp attaches the scene operation that failed
func (e *SceneError) WithOp(op string) *SceneError {
	e.op = op
	return e
}

// Error returns the scene error message
func (e *SceneError) Error() string {
	s := e.ApplicationError.Error()
	if e.op != "" {
		s = fmt.Sprintf("%s: op=%s", s, e.op)
	}
	if e.node != "" {
		s = fmt.Sprintf("%s node=%s", s, e.node)
	}
	return s
}

// Node returns the node associated with the error
func (e *SceneError) Node() string {
	return e.node
}

// Op returns the scene operation associated with the error
func (e *SceneError) Op() string {
	return e.op
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: Unknown}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: Unknown}
}

// IsParseFailure checks if the error is a filename parse failure
func IsParseFailure(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind() == ParseFailed
	}
	return false
}

// IsUnknownTextureKind checks if the error reports an unrecognized
// texture token
func IsUnknownTextureKind(err error) bool {
	var texErr *TextureError
	if errors.As(err, &texErr) {
		return texErr.Kind() == UnknownTextureKind
	}
	return false
}

// IsSceneError checks if the error came from a scene-graph call
func IsSceneError(err error) bool {
	var sceneErr *SceneError
	return errors.As(err, &sceneErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
