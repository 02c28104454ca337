package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	BaseModel
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Account      string    `gorm:"unique;not null;type:varchar(50)"`
	Email        string    `gorm:"unique;not null;type:varchar(100)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
}

// UserSession 登入後的會話  refresh token對應一筆session
type UserSession struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID       uuid.UUID `gorm:"not null;type:uuid;index"`
	AccessToken  string    `gorm:"not null;type:text"`
	RefreshToken string    `gorm:"not null;type:text;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	ExpiresAt    time.Time `gorm:"not null"`
	BaseModel
}

// LoginResponseModel 登入成功回傳的資料
type LoginResponseModel struct {
	AccessToken  string
	RefreshToken string
	User         User
}
