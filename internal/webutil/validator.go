package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/id" // インドネシア語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	id_translations "github.com/go-playground/validator/v10/translations/id"

	"nuna/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// クライアントに見せるフィールド名
var fieldNameTranslations = map[string]string{
	"mood":    "Mood",
	"title":   "Judul",
	"content": "Isi jurnal",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// mood: どちらかの語彙 (または別名) に含まれるラベル
	if err := Validator.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return model.IsKnownMood(fl.Field().String())
	}); err != nil {
		log.Fatal(err)
	}

	indonesian := id.New()
	uni := ut.New(indonesian, indonesian)
	var found bool
	Trans, found = uni.GetTranslator("id")
	if !found {
		log.Fatal("translator not found")
	}
	if err := id_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0} wajib diisi.")
	registerTranslation("mood", "{0} tidak dikenali.")
	registerTranslationWithParam("min", "{0} minimal {1} karakter.")
	registerTranslationWithParam("max", "{0} maksimal {1} karakter.")
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func registerTranslation(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, translatedField(fe))
		return t
	})
}

func registerTranslationWithParam(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, translatedField(fe), fe.Param())
		return t
	})
}
