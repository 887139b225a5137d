package cpp

import "io"

// Config controls the shape and destination of the emitted C++ source.
// spec.md §6 names three `generate` destination modes, all resolved by
// Emit in generate.go: FileBase ({file_base: path}), To ({to: sink}), and
// ToHeader+ToImpl ({to: [header_sink, impl_sink]}). Generate itself
// writes to none of them and just returns strings for programmatic use;
// of the three, only FileBase affects its output (the #include name).
type Config struct {
	// Ch is the character type processChar accepts, e.g. "wchar_t" or
	// "char". Defaults to "wchar_t".
	Ch string
	// ClassName is the emitted parser class's name. Defaults to "Parser".
	ClassName string
	// Namespace, if non-empty, wraps the emitted class in this C++
	// namespace.
	Namespace string
	// Message, if non-empty, is emitted as a banner comment at the top of
	// both the header and the implementation file.
	Message string
	// FileBase, if non-empty, is the path (without extension) EmitFiles
	// writes <FileBase>.h and <FileBase>.cpp to; the implementation's
	// #include names the header by FileBase's base name rather than by
	// ClassName.
	FileBase string
	// To, if non-nil, is the single sink Emit writes header then impl
	// to, concatenated.
	To io.Writer
	// ToHeader and ToImpl, if both non-nil, are the pair of sinks Emit
	// writes the header and implementation to respectively.
	ToHeader io.Writer
	ToImpl   io.Writer
}

func (c Config) withDefaults() Config {
	if c.Ch == "" {
		c.Ch = "wchar_t"
	}
	if c.ClassName == "" {
		c.ClassName = "Parser"
	}
	return c
}
