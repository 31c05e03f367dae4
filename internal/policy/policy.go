// Package policy holds the access decisions for albums, pictures and users.
// All functions are pure: they decide over already-loaded records and never
// touch storage, so callers re-check them wherever a race matters.
package policy

import (
	"sharemypics/internal/model"
)

// CanModifyAlbum reports whether the caller may update, delete or add
// contributors to the album. Ownership is shared: any contributor qualifies.
func CanModifyAlbum(caller *model.User, album *model.Album) bool {
	return caller != nil && album != nil && album.HasContributor(caller.ID)
}

// CanAddPicture reports whether the caller may attach a picture to the album.
func CanAddPicture(caller *model.User, album *model.Album) bool {
	return CanModifyAlbum(caller, album)
}

// CanModifyPicture reports whether the caller may update or delete the
// picture: the uploader and the owning album's contributors share write access.
func CanModifyPicture(caller *model.User, picture *model.Picture, album *model.Album) bool {
	if caller == nil || picture == nil {
		return false
	}
	if picture.AddedBy == caller.ID {
		return true
	}
	return album != nil && album.HasContributor(caller.ID)
}

// CanModifyUser reports whether the caller may update or delete the target
// user record. Self only.
func CanModifyUser(caller *model.User, target *model.User) bool {
	return caller != nil && target != nil && caller.ID == target.ID
}
