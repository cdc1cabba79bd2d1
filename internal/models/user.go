package models

import "fmt"

const CapManageCategories = "manage_categories"

// EditCapability is the capability an author needs to edit their own posts of postType.
func EditCapability(postType string) string {
	return fmt.Sprintf("edit_%ss", postType)
}

// EditOthersCapability lets a user edit posts of postType written by anyone.
func EditOthersCapability(postType string) string {
	return fmt.Sprintf("edit_others_%ss", postType)
}
