package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/utils/validator"
)

// CreatePersonArgs 利用者作成引数
type CreatePersonArgs struct {
	Name        string
	DisplayName string
	BotAccount  bool
	// Admin trueの場合、作成されるローカルアカウントに管理者フラグが立つ
	Admin bool
}

// Validate 構造体を検証します
func (args CreatePersonArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Name, validator.PersonNameRuleRequired...),
		vd.Field(&args.DisplayName, vd.RuneLength(0, 64)),
	)
}

// PersonRepository 利用者リポジトリ
type PersonRepository interface {
	// CreatePerson 利用者とそのローカルアカウントを作成します
	//
	// 成功した場合、利用者とnilを返します。
	// Nameが重複している場合、ErrAlreadyExistsを返します。
	// 引数が不正な場合、バリデーションエラーを返します。
	CreatePerson(args CreatePersonArgs) (*model.Person, error)
	// GetPerson 指定したIDの利用者を取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	GetPerson(id uuid.UUID) (*model.Person, error)
	// IsPersonAdmin 指定した利用者が管理者かどうかを返します
	//
	// ローカルアカウントが存在しない場合はfalseを返します。
	IsPersonAdmin(id uuid.UUID) (bool, error)
	// BlockPerson personIDがtargetIDをブロックします
	//
	// 既にブロック済みの場合は何もしません。
	// 引数にuuid.Nilを渡した場合、ErrNilIDを返します。
	BlockPerson(personID, targetID uuid.UUID) error
	// UnblockPerson personIDによるtargetIDのブロックを解除します
	//
	// ブロックしていない場合は何もしません。
	// 引数にuuid.Nilを渡した場合、ErrNilIDを返します。
	UnblockPerson(personID, targetID uuid.UUID) error
}
