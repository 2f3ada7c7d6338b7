package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryBuddy   Category = "buddy"
	CategoryGroup   Category = "group"
	CategoryDiscuss Category = "discuss"
)

// groupPublicIDModulus folds group numbers the way the remote side does:
// get_friend_uin2 may return a group number offset by a multiple of 1e6.
const groupPublicIDModulus = 1_000_000

var Categories = []Category{CategoryBuddy, CategoryGroup, CategoryDiscuss}

func ParseCategory(raw string) (Category, error) {
	category := Category(strings.TrimSpace(raw))
	switch category {
	case CategoryBuddy, CategoryGroup, CategoryDiscuss:
		return category, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// Contact is a buddy, group or discussion group. Discussion groups have no
// public number and leave QQ at zero.
type Contact struct {
	UIN  int64
	QQ   int64
	Name string
}

type index struct {
	contacts []Contact
	byUIN    map[int64]Contact
	byQQ     map[int64]Contact
	listing  string
}

// Directory is an immutable snapshot of the account's contacts. Refetching
// builds a new Directory instead of mutating this one.
type Directory struct {
	indexes map[Category]*index
}

func NewDirectory(buddies, groups, discusses []Contact) *Directory {
	d := &Directory{indexes: make(map[Category]*index, len(Categories))}

	d.indexes[CategoryBuddy] = buildIndex(buddies, "好友列表:", func(c Contact) (int64, bool) {
		return c.QQ, true
	}, formatNumbered)
	d.indexes[CategoryGroup] = buildIndex(groups, "群列表:", func(c Contact) (int64, bool) {
		return c.QQ % groupPublicIDModulus, true
	}, formatNumbered)
	d.indexes[CategoryDiscuss] = buildIndex(discusses, "讨论组列表:", func(Contact) (int64, bool) {
		return 0, false
	}, formatUnnumbered)

	return d
}

func buildIndex(contacts []Contact, title string, publicKey func(Contact) (int64, bool), format func(Contact) string) *index {
	idx := &index{
		contacts: append([]Contact(nil), contacts...),
		byUIN:    make(map[int64]Contact, len(contacts)),
		byQQ:     make(map[int64]Contact, len(contacts)),
	}

	lines := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		idx.byUIN[contact.UIN] = contact
		if key, ok := publicKey(contact); ok {
			idx.byQQ[key] = contact
		}
		lines = append(lines, format(contact))
	}
	idx.listing = title + "\n" + strings.Join(lines, "\n")

	return idx
}

func formatNumbered(c Contact) string {
	return fmt.Sprintf("%d, %s, uin%d", c.QQ, c.Name, c.UIN)
}

func formatUnnumbered(c Contact) string {
	return fmt.Sprintf("%s, uin%d", c.Name, c.UIN)
}

func (d *Directory) index(category Category) *index {
	if d == nil {
		return nil
	}
	return d.indexes[category]
}

func (d *Directory) Contacts(category Category) []Contact {
	idx := d.index(category)
	if idx == nil {
		return nil
	}
	return append([]Contact(nil), idx.contacts...)
}

// Listing returns the precomputed human readable list for a category, or an
// empty string for an unknown one.
func (d *Directory) Listing(category Category) string {
	idx := d.index(category)
	if idx == nil {
		return ""
	}
	return idx.listing
}

func (d *Directory) ByUIN(category Category, uin int64) (Contact, error) {
	idx := d.index(category)
	if idx == nil {
		return Contact{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	contact, ok := idx.byUIN[uin]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s uin %d", ErrContactNotFound, category, uin)
	}
	return contact, nil
}

// ByPublicID resolves a number a human would type. Groups are matched modulo
// 1,000,000 and discussion groups, which have no public number, by uin.
func (d *Directory) ByPublicID(category Category, id int64) (Contact, error) {
	idx := d.index(category)
	if idx == nil {
		return Contact{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	var (
		contact Contact
		ok      bool
	)
	switch category {
	case CategoryGroup:
		contact, ok = idx.byQQ[id%groupPublicIDModulus]
	case CategoryDiscuss:
		contact, ok = idx.byUIN[id]
	default:
		contact, ok = idx.byQQ[id]
	}
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s %d", ErrContactNotFound, category, id)
	}

	return contact, nil
}

func (d *Directory) Count(category Category) int {
	idx := d.index(category)
	if idx == nil {
		return 0
	}
	return len(idx.contacts)
}
