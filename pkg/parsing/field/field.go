package field

import (
	_ "embed"
	"errors"
	"fmt"
	httpOutputErrors "github.com/Motmedel/http_output_go/pkg/errors"
	httpOutputTypesResponse "github.com/Motmedel/http_output_go/pkg/types/response"
	"github.com/Motmedel/parsing_utils/pkg/parsing_utils"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	goabnf "github.com/pandatix/go-abnf"
	"strings"
)

//go:embed grammar.txt
var grammar []byte

var FieldGrammar *goabnf.Grammar

var (
	ErrNilGrammar   = errors.New("nil grammar")
	ErrEmptyName    = errors.New("empty name")
	ErrNilFieldPath = errors.New("nil field path")
)

// Parse validates a raw header pair against the field grammar and returns the
// structured header entry. The value is trimmed of optional whitespace before
// validation; the name is not altered.
func Parse(name string, value string) (*httpOutputTypesResponse.HeaderEntry, error) {
	if FieldGrammar == nil {
		return nil, ErrNilGrammar
	}

	if name == "" {
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: %w", httpOutputErrors.ErrHeaderParse, ErrEmptyName),
		)
	}

	data := []byte(name + ":" + strings.Trim(value, " \t"))

	paths, err := goabnf.Parse(data, FieldGrammar, "root")
	if err != nil {
		return nil, motmedelErrors.MakeError(
			fmt.Errorf("%w: goabnf parse: %w", httpOutputErrors.ErrHeaderParse, err),
			data,
		)
	}
	if len(paths) == 0 {
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: %w", httpOutputErrors.ErrHeaderParse, motmedelErrors.ErrSyntaxError),
			data,
		)
	}

	var headerEntry httpOutputTypesResponse.HeaderEntry

	interestingPaths := parsing_utils.SearchPath(
		paths[0],
		[]string{"field-name", "field-value"}, 2, false,
	)
	for _, interestingPath := range interestingPaths {
		pathValue := string(parsing_utils.ExtractPathValue(data, interestingPath))
		switch interestingPath.MatchRule {
		case "field-name":
			headerEntry.Name = pathValue
		case "field-value":
			headerEntry.Value = pathValue
		}
	}

	if headerEntry.Name == "" {
		return nil, motmedelErrors.MakeErrorWithStackTrace(
			fmt.Errorf("%w: %w (field-name)", httpOutputErrors.ErrHeaderParse, ErrNilFieldPath),
			data,
		)
	}

	return &headerEntry, nil
}

func init() {
	var err error
	FieldGrammar, err = goabnf.ParseABNF(grammar)
	if err != nil {
		panic(fmt.Sprintf("goabnf parse abnf (field grammar): %v", err))
	}
}
