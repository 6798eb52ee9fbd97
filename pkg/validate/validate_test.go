package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string  `validate:"required,email"`
	Phone string  `validate:"omitempty,phone"`
	Zip   string  `validate:"omitempty,zipcode"`
	Price float64 `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr bool
		field   string
	}{
		{name: "valid", in: sample{Email: "a@b.com", Phone: "+15551234567", Zip: "10001", Price: 9.5}},
		{name: "valid extended zip", in: sample{Email: "a@b.com", Zip: "10001-1234", Price: 1}},
		{name: "missing email", in: sample{Price: 1}, wantErr: true, field: "Email"},
		{name: "bad phone", in: sample{Email: "a@b.com", Phone: "012", Price: 1}, wantErr: true, field: "Phone"},
		{name: "bad zip", in: sample{Email: "a@b.com", Zip: "1234", Price: 1}, wantErr: true, field: "Zip"},
		{name: "non positive price", in: sample{Email: "a@b.com"}, wantErr: true, field: "Price"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := Struct(testCase.in)
			if !testCase.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			messages := Messages(err)
			assert.Contains(t, messages, testCase.field)
		})
	}
}
