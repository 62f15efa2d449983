package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Document is a schemaless record addressed by collection and id.
type Document struct {
	Collection string    `gorm:"type:varchar(64);primaryKey" json:"collection"`
	ID         string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	Data       JSON      `gorm:"type:jsonb" json:"data"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Clone returns a shallow copy of j.
func (j JSON) Clone() JSON {
	if j == nil {
		return nil
	}
	out := make(JSON, len(j))
	for k, v := range j {
		out[k] = v
	}
	return out
}

// Merge copies every field of partial into j, leaving other fields untouched.
func (j JSON) Merge(partial JSON) JSON {
	out := j.Clone()
	if out == nil {
		out = make(JSON, len(partial))
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// Collections used by the application.
const (
	CollectionUsers       = "users"
	CollectionCredentials = "credentials"
	CollectionSettings    = "settings"
	CollectionAuditLogs   = "audit_logs"
)
