package validator

import (
	"errors"
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
)

// NotNilUUID uuid.Nilでない有効なUUIDであるかどうか
var NotNilUUID = vd.By(func(value interface{}) error {
	const errMessage = "invalid uuid"
	switch v := value.(type) {
	case nil:
		return nil
	case uuid.UUID:
		if v == uuid.Nil {
			return errors.New(errMessage)
		}
	case uuid.NullUUID:
		if v.Valid && v.UUID == uuid.Nil {
			return errors.New(errMessage)
		}
	case []byte:
		u, err := uuid.FromBytes(v)
		if err != nil || u == uuid.Nil {
			return errors.New(errMessage)
		}
	case string:
		u, err := uuid.FromString(v)
		if err != nil || u == uuid.Nil {
			return errors.New(errMessage)
		}
	default:
		return errors.New(errMessage)
	}
	return nil
})

// PersonNameRule 利用者名バリデーションルール
var PersonNameRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).Error("must contain [a-zA-Z0-9_-] only"),
	vd.RuneLength(1, 32),
}

// PersonNameRuleRequired 利用者名バリデーションルール with Required
var PersonNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, PersonNameRule...)

// CommunityNameRule コミュニティ名バリデーションルール
var CommunityNameRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-z0-9_]+$`)).Error("must contain [a-z0-9_] only"),
	vd.RuneLength(1, 64),
}

// CommunityNameRuleRequired コミュニティ名バリデーションルール with Required
var CommunityNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, CommunityNameRule...)

// ReportReasonRule 通報理由バリデーションルール
var ReportReasonRule = []vd.Rule{
	vd.RuneLength(1, 1000),
}

// ReportReasonRuleRequired 通報理由バリデーションルール with Required
var ReportReasonRuleRequired = append([]vd.Rule{
	vd.Required,
}, ReportReasonRule...)
