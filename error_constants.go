package idtheory

const (
	CodeMalformedInput  = "id.malformed_input"
	CodeInvalidSymbol   = "id.invalid_symbol"
	CodeOverflow        = "id.overflow"
	CodeInvalidAlphabet = "id.invalid_alphabet"
	CodeGeneratorFailed = "id.generator_failed"
)

const (
	errorMessageMalformedInput  = "malformed input"
	errorMessageInvalidSymbol   = "invalid symbol"
	errorMessageOverflow        = "value does not fit"
	errorMessageInvalidAlphabet = "invalid alphabet"
	errorMessageGeneratorFailed = "generator failed"
)
