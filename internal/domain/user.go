package domain

import "regexp"

// DefaultAvatarURL is assigned to users created without an avatar.
const DefaultAvatarURL = "https://avatars2.githubusercontent.com/u/24394918?s=400&v=1"

// avatarURLPattern accepts anything URL-shaped: an optional http(s) scheme,
// a dotted host, and at least one further path/query character.
var avatarURLPattern = regexp.MustCompile(
	`^(?:http(s)?://)?[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#[\]@!$&'()*+,;=.]+$`,
)

// User is a registered author. The username doubles as the primary key.
type User struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

// Normalize applies the default avatar URL when none was supplied and
// validates the shape of one that was. It does not check required fields;
// those are enforced by the storage schema.
func (u *User) Normalize() error {
	if u.AvatarURL == "" {
		u.AvatarURL = DefaultAvatarURL
		return nil
	}
	if !avatarURLPattern.MatchString(u.AvatarURL) {
		return ErrInvalidAvatarURL
	}
	return nil
}
