package model

import "unicode/utf8"

// VisionItem 愿景板上的一张图片
// swagger:model VisionItem
type VisionItem struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"userId"`
	ImageURL  string `gorm:"size:512;not null" json:"imageUrl"`
	ObjectKey string `gorm:"size:255;not null" json:"-"`
	Caption   string `gorm:"size:255" json:"caption"`
	Position  int    `gorm:"default:0" json:"position"`
}

func (VisionItem) TableName() string {
	return "vision_items"
}

// swagger:model VisionItemPatch
type VisionItemPatch struct {
	Caption  *string `json:"caption"`
	Position *int    `json:"position"`
}

func (p VisionItemPatch) Validate() error {
	if p.Caption == nil && p.Position == nil {
		return ErrEmptyPatch
	}
	if p.Caption != nil && utf8.RuneCountInString(*p.Caption) > 255 {
		return invalidField("caption", "is too long")
	}
	if p.Position != nil && *p.Position < 0 {
		return invalidField("position", "must not be negative")
	}
	return nil
}

func (p VisionItemPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Caption != nil {
		changes["caption"] = *p.Caption
	}
	if p.Position != nil {
		changes["position"] = *p.Position
	}
	return changes
}
