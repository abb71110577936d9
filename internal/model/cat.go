// Package model holds the data shapes shared by the handler, service and repository layers.
package model

// Cat is one cat record. It has no identity field and is never mutated after creation.
type Cat struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Breed string `json:"breed"`
}

// CreateCatDto is the request body of POST /cats.
//
// It carries no validation rules: any body with these three fields is accepted,
// missing fields are zero values.
type CreateCatDto struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Breed string `json:"breed"`
}

// ToCat converts the DTO field-for-field.
func (dto CreateCatDto) ToCat() Cat {
	return Cat(dto)
}
