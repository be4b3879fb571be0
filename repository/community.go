package repository

import (
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/utils/optional"
	"github.com/jayvdb/lemmy/utils/validator"
)

// CreateCommunityArgs コミュニティ作成引数
type CreateCommunityArgs struct {
	Name        string
	Title       string
	Description string
	Visibility  model.CommunityVisibility
}

// Validate 構造体を検証します
func (args CreateCommunityArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Name, validator.CommunityNameRuleRequired...),
		vd.Field(&args.Title, vd.RuneLength(0, 128)),
		vd.Field(&args.Visibility, vd.In(model.CommunityVisibilityPublic, model.CommunityVisibilityPrivate)),
	)
}

// CommunityRepository コミュニティリポジトリ
type CommunityRepository interface {
	// CreateCommunity コミュニティを作成します
	//
	// Nameが重複している場合、ErrAlreadyExistsを返します。
	CreateCommunity(args CreateCommunityArgs) (*model.Community, error)
	// GetCommunity 指定したIDのコミュニティを取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	GetCommunity(id uuid.UUID) (*model.Community, error)
	// AddCommunityModerator 指定した利用者をコミュニティのモデレーターにします
	//
	// 既にモデレーターの場合は何もしません。
	AddCommunityModerator(communityID, personID uuid.UUID) error
	// RemoveCommunityModerator 指定した利用者をコミュニティのモデレーターから外します
	RemoveCommunityModerator(communityID, personID uuid.UUID) error
	// GetCommunityModerators コミュニティのモデレーター関係を就任日時順で取得します
	GetCommunityModerators(communityID uuid.UUID) ([]*model.CommunityModerator, error)
	// BanPersonFromCommunity 指定した利用者をコミュニティからBANします
	//
	// expiresが無効の場合は無期限BAN。既にBAN済みの場合は期限を上書きします。
	BanPersonFromCommunity(communityID, personID uuid.UUID, expires optional.Of[time.Time]) error
	// UnbanPersonFromCommunity 指定した利用者のコミュニティBANを解除します
	UnbanPersonFromCommunity(communityID, personID uuid.UUID) error
	// FollowCommunity 指定した利用者がコミュニティをフォローします
	//
	// 非公開コミュニティの場合は承認待ち(pending)となる。
	FollowCommunity(communityID, personID uuid.UUID) error
	// UnfollowCommunity 指定した利用者がコミュニティのフォローを解除します
	UnfollowCommunity(communityID, personID uuid.UUID) error
}
