package client

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	var ok bool

	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("client: failed to get 'en' translator")
	}

	err := en_translations.RegisterDefaultTranslations(validate, translator)
	if err != nil {
		panic(err)
	}
}

// configRules are the constraints a resolved configuration must meet.
type configRules struct {
	Server  string        `validate:"required,url"`
	Timeout time.Duration `validate:"gte=0"`
}

// resolveConfig fills defaults into a copy of config and validates it.
// Credentials are checked first so that nothing else runs without them.
func resolveConfig(config xinca.Config) (xinca.Config, error) {
	if config.Session != nil && isNilSession(config.Session) {
		return xinca.Config{}, fmt.Errorf("%w: %w", xinca.ErrInvalidConfig, xinca.ErrNilSession)
	}

	if config.Session == nil && (config.Username == "" || config.Password == "") {
		return xinca.Config{}, fmt.Errorf("%w: %w", xinca.ErrInvalidConfig, xinca.ErrCredentialsRequired)
	}

	config.Server = normalizeServer(config.Server)

	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	err := validateRules(configRules{Server: config.Server, Timeout: config.Timeout})
	if err != nil {
		return xinca.Config{}, err
	}

	if config.InsecureSkipVerify && !isDevelopmentEnvironment() {
		return xinca.Config{}, fmt.Errorf("%w (set %s=true)", xinca.ErrSkipTLSOnlyInDev, constants.DevModeEnv)
	}

	return config, nil
}

// isNilSession reports whether session holds a typed nil, such as a nil
// *http.Client.
func isNilSession(session xinca.Session) bool {
	value := reflect.ValueOf(session)

	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}

// normalizeServer applies the default server, trims trailing slashes and
// adds a scheme when none is present.
func normalizeServer(server string) string {
	server = strings.TrimSpace(server)
	if server == "" {
		return constants.DefaultServer
	}

	server = strings.TrimRight(server, "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "https://" + server
	}

	return server
}

func validateRules(rules configRules) error {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return fmt.Errorf("%w: %w", xinca.ErrInvalidConfig, err)
	}

	messages := make([]string, 0, len(verrors))
	for _, verror := range verrors {
		messages = append(messages, verror.Translate(translator))
	}

	return fmt.Errorf("%w: %s", xinca.ErrInvalidConfig, strings.Join(messages, "; "))
}
