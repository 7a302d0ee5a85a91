// Package locale localizes the user-facing alert and form messages. The
// original site is Spanish-first; es-ES is the default, en-US is offered
// through Accept-Language or a "lang" cookie.
package locale

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/thot-edu/campus/logger"
)

var i18nBundle *i18n.Bundle

// InitLocalizer parses the embedded toml message files into the bundle.
func InitLocalizer(i18nFS embed.FS) error {
	i18nBundle = i18n.NewBundle(language.MustParse("es-ES"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return parseTranslationFiles(i18nFS, i18nBundle)
}

func createTemplateData(params []string) map[string]any {
	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, "==", 2)
		if len(parts) == 2 {
			templateData[parts[0]] = parts[1]
		}
	}
	return templateData
}

// I18n resolves a message key against the given localizer. Unresolvable
// keys fall back to the key itself so a missing translation never blanks
// a page.
func I18n(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		return key
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Warningf("failed to localize %q: %v", key, err)
		return key
	}
	return msg
}

// LocalizerMiddleware negotiates the request language and stores a
// per-request localizer in the gin context.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string
		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		localizer := i18n.NewLocalizer(i18nBundle, lang)
		c.Set("localizer", localizer)
		c.Set("I18n", func(key string, params ...string) string {
			return I18n(localizer, key, params...)
		})
		c.Next()
	}
}

func parseTranslationFiles(i18nFS embed.FS, bundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = bundle.ParseMessageFileBytes(data, path)
			return err
		})
}
