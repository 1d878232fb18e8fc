package room

import (
	"context"
	"log"
	"time"

	"github.com/sanity-io/litter"

	"holdemsrv/account"
	"holdemsrv/holdem"
	"holdemsrv/player"
	"holdemsrv/wire"
)

// storeTimeout bounds each chip-store round trip made by a room.
const storeTimeout = 5 * time.Second

// PokerRoom hosts one Texas Hold'em table. The embedded mutex is the
// table's single-writer lock: every game mutation happens under the write
// lock, every snapshot under the read lock, and the chip store is only
// called with the lock released.
type PokerRoom struct {
	baseRoom
	game  *holdem.Game
	chips account.ChipStore

	debugDump bool
}

// NewPokerRoom creates a table backed by the given chip ledger. Blinds are
// unset; the table deals no hands until a MsgServerPokerSetBlinds arrives.
func NewPokerRoom(id int, name string, chips account.ChipStore) *PokerRoom {
	return &PokerRoom{
		baseRoom: newBaseRoom(id, name),
		game:     holdem.NewGame(),
		chips:    chips,
	}
}

// NewPokerRoomSeeded is NewPokerRoom with a deterministic deck, for tests.
func NewPokerRoomSeeded(id int, name string, chips account.ChipStore, seed int64) *PokerRoom {
	r := NewPokerRoom(id, name, chips)
	r.game = holdem.NewGameSeeded(seed)
	return r
}

func (r *PokerRoom) Kind() Kind { return KindPoker }

// Empty holds off removal until every departing seat has been swept and
// banked by the tick.
func (r *PokerRoom) Empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) == 0 && len(r.game.Seats()) == 0
}

func (r *PokerRoom) AddPlayer(p *player.Player) wire.ErrCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[p.ID]; ok {
		return wire.ErrAlreadyInRoom
	}
	r.players[p.ID] = p
	return wire.ErrNone
}

// RemovePlayer withdraws a player from the room. A seat not dealt into a
// hand is cashed out immediately; a seat mid-hand is flagged to auto-fold
// and is cashed out by the tick once the hand concludes.
func (r *PokerRoom) RemovePlayer(p *player.Player) {
	cashOut := 0

	r.mu.Lock()
	delete(r.players, p.ID)
	if seat := r.game.SeatByPlayer(p.ID); seat != nil {
		r.game.MarkPendingLeave(p.ID)
		if !seat.InHand {
			cashOut = r.game.CashOut(p.ID)
			r.game.RemovePendingLeavers()
		}
	}
	r.mu.Unlock()

	r.creditBank(p.ID, cashOut)
}

func (r *PokerRoom) creditBank(playerID, amount int) {
	if amount <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := r.chips.Credit(ctx, playerID, amount); err != nil {
		// The ledger is the source of truth for banked chips; a failed
		// cash-out credit must be visible in the logs for reconciliation.
		log.Printf("room %d: credit %d chips to player %d failed: %v",
			r.id, amount, playerID, err)
	}
}

func (r *PokerRoom) HandleMessage(p *player.Player, pkt *wire.Packet) {
	switch pkt.Type() {
	case wire.MsgServerGetPokerTableInfo:
		r.sendTableTo(p)
	case wire.MsgServerSitDown:
		r.handleSitDown(p, pkt)
	case wire.MsgServerPokerBuyIn:
		r.handleBuyIn(p, pkt)
	case wire.MsgServerPokerAction:
		r.handleAction(p, pkt)
	case wire.MsgServerPokerStandUp:
		r.handleStandUp(p, pkt)
	case wire.MsgServerPokerSetBlinds:
		r.handleSetBlinds(p, pkt)
	default:
		sendError(p, wire.ErrUnknownMsg)
	}
}

func (r *PokerRoom) handleSitDown(p *player.Player, pkt *wire.Packet) {
	seatHint := int(pkt.ReadInt32())

	r.mu.Lock()
	seatIdx := r.game.SitDown(p.ID, seatHint)
	minBuyIn := r.game.MinBuyIn()
	bigBlind := r.game.BigBlind()
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	bank, err := r.chips.Balance(ctx, p.ID)
	cancel()
	if err != nil {
		bank = 0
	}

	reply := wire.NewPacket(wire.MsgClientSitDown)
	reply.WriteInt32(int32(seatIdx))
	reply.WriteInt32(int32(minBuyIn))
	reply.WriteInt32(int32(bigBlind))
	reply.WriteInt32(int32(bank))
	p.Send(reply)

	if seatIdx >= 0 {
		r.broadcastTable()
	}
}

// handleBuyIn moves chips from the bank onto the table in two phases: the
// debit happens against the store with no lock held, then the game applies
// the buy-in under the lock, and a rejected buy-in refunds the debit. The
// ledger never goes negative and the table never holds unbacked chips.
func (r *PokerRoom) handleBuyIn(p *player.Player, pkt *wire.Packet) {
	amount := int(pkt.ReadInt32())

	r.mu.RLock()
	blindsSet := r.game.BlindsSet()
	seated := r.game.SeatByPlayer(p.ID) != nil
	minBuyIn := r.game.MinBuyIn()
	r.mu.RUnlock()

	switch {
	case !blindsSet:
		sendError(p, wire.ErrBlindsNotSet)
		return
	case !seated:
		sendError(p, wire.ErrNotSeated)
		return
	case amount < minBuyIn:
		r.sendBuyInReply(p, holdem.BuyInBelowMinimum)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	err := r.chips.Debit(ctx, p.ID, amount)
	cancel()
	if err != nil {
		sendError(p, wire.ErrInsufficientChips)
		return
	}

	r.mu.Lock()
	result := r.game.BuyIn(p.ID, amount)
	r.mu.Unlock()

	if result != holdem.BuyInSuccess {
		r.creditBank(p.ID, amount)
	}
	r.sendBuyInReply(p, result)

	if result == holdem.BuyInSuccess {
		r.broadcastTable()
	}
}

func (r *PokerRoom) sendBuyInReply(p *player.Player, result holdem.BuyInResult) {
	r.mu.RLock()
	chips := r.game.PlayerChips(p.ID)
	r.mu.RUnlock()

	reply := wire.NewPacket(wire.MsgClientPokerBuyIn)
	reply.WriteUint8(uint8(result))
	reply.WriteInt32(int32(chips))
	p.Send(reply)
}

func (r *PokerRoom) handleAction(p *player.Player, pkt *wire.Packet) {
	action := holdem.Action(pkt.ReadUint8())
	amount := int(pkt.ReadInt32())

	r.mu.Lock()
	r.game.HandleAction(p.ID, action, amount)
	r.mu.Unlock()

	r.publishResultIfAny()
	r.broadcastTable()
}

func (r *PokerRoom) handleStandUp(p *player.Player, pkt *wire.Packet) {
	sitBack := pkt.ReadUint8() != 0

	r.mu.Lock()
	var ok bool
	if sitBack {
		ok = r.game.SitBack(p.ID)
	} else {
		ok = r.game.StandUp(p.ID)
	}
	r.mu.Unlock()

	reply := wire.NewPacket(wire.MsgClientPokerStandUp)
	if ok {
		reply.WriteUint8(1)
	} else {
		reply.WriteUint8(0)
	}
	p.Send(reply)
}

func (r *PokerRoom) handleSetBlinds(p *player.Player, pkt *wire.Packet) {
	smallBlind := int(pkt.ReadInt32())
	bigBlind := int(pkt.ReadInt32())

	r.mu.Lock()
	result := r.game.SetBlinds(smallBlind, bigBlind)
	r.mu.Unlock()

	reply := wire.NewPacket(wire.MsgClientPokerSetBlinds)
	reply.WriteUint8(uint8(result))
	p.Send(reply)

	if result == holdem.SetBlindsSuccess {
		r.broadcastTable()
	}
}

// Tick drives everything time-based on the table: acting for absent
// players, settling hands no seat can act on, sweeping out departed seats
// (and banking their chips), starting the next hand, and publishing a
// finished hand's result exactly once.
func (r *PokerRoom) Tick(time.Time) {
	type cashOut struct{ playerID, chips int }
	var cashOuts []cashOut

	r.mu.Lock()
	before := r.tableFingerprint()

	r.game.ProcessAutoModePlayer()
	r.game.ResolveIfNeeded()

	for _, seat := range r.game.Seats() {
		if seat.PendingLeave && !seat.InHand && seat.Chips > 0 {
			cashOuts = append(cashOuts, cashOut{seat.PlayerID, r.game.CashOut(seat.PlayerID)})
		}
	}
	r.game.RemovePendingLeavers()

	if r.game.CanStart() {
		r.game.StartHand()
	}

	after := r.tableFingerprint()
	r.mu.Unlock()

	for _, co := range cashOuts {
		r.creditBank(co.playerID, co.chips)
	}

	r.publishResultIfAny()
	if before != after {
		r.broadcastTable()
	}
}

// tableFingerprint is a cheap change marker; callers must hold the lock.
func (r *PokerRoom) tableFingerprint() [3]int {
	return [3]int{int(r.game.Stage()), r.game.ActingPlayerID(), len(r.game.Seats())}
}

// publishResultIfAny consumes a pending hand result and broadcasts it.
func (r *PokerRoom) publishResultIfAny() {
	r.mu.Lock()
	result, ok := r.game.TakeHandResult()
	r.mu.Unlock()
	if !ok {
		return
	}

	if r.debugDump {
		log.Printf("room %d hand result: %s", r.id, litter.Sdump(result))
	}

	pkt := wire.NewPacket(wire.MsgClientPokerHandResult)
	result.Write(pkt)
	r.broadcast(pkt)
}

// broadcastTable sends each occupant their own view of the table; hole
// cards are only ever written into the owner's packet.
func (r *PokerRoom) broadcastTable() {
	for _, p := range r.occupants() {
		r.sendTableTo(p)
	}
}

func (r *PokerRoom) sendTableTo(p *player.Player) {
	pkt := wire.NewPacket(wire.MsgClientPokerTableInfo)
	pkt.WriteInt32(int32(r.id))

	r.mu.RLock()
	r.game.WriteTable(pkt, p.ID)
	r.mu.RUnlock()

	p.Send(pkt)
}

// SetDebugDump toggles hand-result dumps to the log.
func (r *PokerRoom) SetDebugDump(on bool) { r.debugDump = on }
