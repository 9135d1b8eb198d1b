package entity

import "time"

// CommunityPost is a short post on the community feed.
// Comments is a plain counter, not a collection.
type CommunityPost struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	UserName   string              `json:"userName"`
	UserAvatar string              `json:"userAvatar"`
	Content    string              `json:"content"`
	Images     []string            `json:"images"`
	CarBrand   *string             `json:"carBrand,omitempty"`
	CarModel   *string             `json:"carModel,omitempty"`
	Likes      int                 `json:"likes"`
	Comments   int                 `json:"comments"`
	IsLiked    bool                `json:"isLiked"`
	LikedBy    map[string]struct{} `json:"-"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// PostPatch is a shallow-merge update. Nil fields are left untouched.
type PostPatch struct {
	Content  *string
	Images   []string
	CarBrand *string
	CarModel *string
}

// Clone returns a deep copy with IsLiked resolved for viewerID.
func (p *CommunityPost) Clone(viewerID string) *CommunityPost {
	if p == nil {
		return nil
	}
	c := *p
	c.Images = CopyStrings(p.Images)
	c.LikedBy = make(map[string]struct{}, len(p.LikedBy))
	for id := range p.LikedBy {
		c.LikedBy[id] = struct{}{}
	}
	_, c.IsLiked = p.LikedBy[viewerID]
	return &c
}
