// file: internals/helpers/validator.go
package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance tunggal, nama field diambil dari tag json supaya
// pesan error memakai key yang sama dengan payload.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors: kumpulan pelanggaran per field, SEMUA field yang melanggar
// ikut dilaporkan (bukan cuma yang pertama).
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Merge(other FieldErrors) {
	for k, msgs := range other {
		fe[k] = append(fe[k], msgs...)
	}
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// ValidationError membungkus FieldErrors sebagai error biasa supaya bisa
// dialirkan lewat return err dan dipetakan controller ke 400.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string { return "validasi gagal" }

func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ValidateStruct menjalankan validator.v10 dan mengembalikan pelanggaran
// sebagai FieldErrors. Key memakai namespace json ("residential_address.city").
func ValidateStruct(s any) FieldErrors {
	fe := FieldErrors{}
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, f := range verrs {
				fe.Add(jsonNamespace(f.Namespace()), tagMessage(f))
			}
		} else {
			fe.Add("_", "Format tidak valid.")
		}
	}
	return fe
}

// jsonNamespace memotong nama struct terluar: "RegisterRequest.teacher.qualification"
// → "teacher.qualification".
func jsonNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return "minimal " + f.Param() + " karakter"
	case "max":
		return "maksimal " + f.Param() + " karakter"
	case "oneof":
		return "harus salah satu dari: " + f.Param()
	case "dive":
		return "isi entri tidak valid"
	default:
		return "format tidak valid"
	}
}
