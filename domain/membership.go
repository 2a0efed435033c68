package domain

// ToggleMember flips candidate's membership in members.
//
// If candidate is present the first occurrence is removed and false is
// returned; otherwise candidate is appended and true is returned. The
// relative order of the remaining members is preserved, so applying the
// toggle twice restores the original membership. This single
// operation backs both follow/unfollow and like/unlike; the caller owns the
// paired counter delta on the other entity.
func ToggleMember(members []string, candidate string) ([]string, bool) {
	for i := range members {
		if members[i] == candidate {
			return append(members[:i:i], members[i+1:]...), false
		}
	}
	return append(members, candidate), true
}
