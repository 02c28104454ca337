package model

import (
	"net/mail"
	"strings"
)

// OrderForm 結帳時提交的聯絡與收件欄位
type OrderForm struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Validate 逐欄位檢查  回傳欄位名稱對應錯誤訊息
// 全部通過時回傳空map
func (f *OrderForm) Validate() map[string]string {
	errs := map[string]string{}

	required := map[string]string{
		"first_name":  f.FirstName,
		"last_name":   f.LastName,
		"email":       f.Email,
		"address":     f.Address,
		"postal_code": f.PostalCode,
		"city":        f.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "this field is required"
		}
	}

	if _, ok := errs["email"]; !ok {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			errs["email"] = "enter a valid email address"
		}
	}

	return errs
}
