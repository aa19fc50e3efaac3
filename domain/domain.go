package domain

// Table is a mongo collection name
type Table string

const (
	TableAuctions      Table = "auctions"
	TableBids          Table = "bids"
	TableAuctionMedia  Table = "auction_media"
	TableAccounts      Table = "accounts"
	TableNotifications Table = "notifications"
)

// UserId identifies an account. Ids are uuid strings issued at registration.
type UserId string

func (u UserId) IsEmpty() bool {
	return len(u) == 0
}

func (u UserId) Equals(o UserId) bool {
	return u == o
}

type AuctionId string

func (a AuctionId) String() string {
	return string(a)
}

type BidId string

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
