package wire

// MsgType tags a packet with its meaning. Server-prefixed messages travel
// client→server, client-prefixed messages travel server→client.
type MsgType uint16

const (
	MsgConnect MsgType = iota
	MsgDebug

	MsgServerTick
	MsgServerErrorRespond
	MsgServerSendText
	MsgServerGotoRoom
	MsgServerLeaveRoom
	MsgServerCreateRoom
	MsgServerListRooms

	MsgClientTick
	MsgClientErrorRespond
	MsgClientSendText
	MsgClientGotoRoom
	MsgClientLeaveRoom
	MsgClientCreateRoom
	MsgClientListRooms

	// poker room messages
	MsgServerGetPokerTableInfo
	MsgClientPokerTableInfo
	MsgServerSitDown
	MsgClientSitDown
	MsgServerPokerAction
	MsgClientPokerHandResult
	MsgServerPokerBuyIn
	MsgClientPokerBuyIn
	MsgServerPokerStandUp
	MsgClientPokerStandUp
	MsgServerPokerSetBlinds
	MsgClientPokerSetBlinds

	msgTypeCount
)

// IsValid reports whether t is a known message type.
func (t MsgType) IsValid() bool { return t < msgTypeCount }

// ErrCode is a discrete error reported back to a client in a
// MsgClientErrorRespond packet.
type ErrCode uint16

const (
	ErrNone ErrCode = iota
	ErrUnknownMsg
	ErrPlayerState
	ErrRoomNotFound
	ErrAlreadyInRoom
	ErrNotInRoom
	ErrRoomTypeUnknown
	ErrBlindsNotSet
	ErrNotSeated
	ErrInsufficientChips
	ErrBuyInFailed
)
