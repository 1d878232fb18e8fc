package holdem

import (
	"math/rand"
	"sort"
	"time"

	"holdemsrv/cards"
	"holdemsrv/wire"
)

// Stage is the betting-round state of the table.
type Stage uint8

const (
	StageWaiting Stage = iota
	StagePreFlop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

// Action is a player's betting decision.
type Action uint8

const (
	ActionCheckCall Action = 0
	ActionBetRaise  Action = 1
	ActionFold      Action = 2
)

// BuyInResult reports the outcome of a buy-in attempt.
type BuyInResult uint8

const (
	BuyInSuccess BuyInResult = iota
	BuyInPlayerNotFound
	BuyInBelowMinimum
	BuyInAlreadyInHand
)

// SetBlindsResult reports the outcome of a blind reconfiguration.
type SetBlindsResult uint8

const (
	SetBlindsSuccess SetBlindsResult = iota
	SetBlindsGameInProgress
	SetBlindsInvalidValue
)

const defaultMinBuyIn = 1000

// Game is the Texas Hold'em table state machine: seats, community cards,
// side pots, deck, button and turn tracking. It is not safe for concurrent
// use; the owning room serializes every call under its lock.
type Game struct {
	seats     []*Seat
	community []cards.Card
	sidePots  []SidePot
	deck      *cards.Deck
	rng       *rand.Rand

	stage       Stage
	button      int // position in seats slice
	actingIndex int // position in seats slice
	lastBet     int

	smallBlind int
	bigBlind   int
	minBuyIn   int

	lastResult       HandResult
	hasPendingResult bool
}

// NewGame creates an empty table seeded from the wall clock.
func NewGame() *Game {
	return NewGameSeeded(time.Now().UnixNano())
}

// NewGameSeeded creates an empty table with a deterministic shuffle source.
// Given the same seed, seats and actions, every deal and every pot is
// reproducible.
func NewGameSeeded(seed int64) *Game {
	return &Game{
		deck:       cards.NewDeck(),
		rng:        rand.New(rand.NewSource(seed)),
		smallBlind: -1,
		bigBlind:   -1,
		minBuyIn:   defaultMinBuyIn,
	}
}

// SetBlinds configures the blind levels. Refused while a hand is running or
// for non-positive values. The minimum buy-in follows the big blind.
func (g *Game) SetBlinds(smallBlind, bigBlind int) SetBlindsResult {
	if g.stage != StageWaiting {
		return SetBlindsGameInProgress
	}
	if smallBlind <= 0 || bigBlind <= 0 {
		return SetBlindsInvalidValue
	}
	g.smallBlind = smallBlind
	g.bigBlind = bigBlind
	g.minBuyIn = bigBlind * 100
	return SetBlindsSuccess
}

// BlindsSet reports whether blinds have been configured.
func (g *Game) BlindsSet() bool { return g.smallBlind > 0 && g.bigBlind > 0 }

func (g *Game) SmallBlind() int { return g.smallBlind }
func (g *Game) BigBlind() int   { return g.bigBlind }
func (g *Game) MinBuyIn() int   { return g.minBuyIn }

// Stage returns the current betting-round state.
func (g *Game) Stage() Stage { return g.stage }

// CanStart reports whether a new hand may begin: blinds configured, table
// idle, and at least two seats able to cover the big blind.
func (g *Game) CanStart() bool {
	if !g.BlindsSet() {
		return false
	}
	return g.stage == StageWaiting && g.ActiveSeatCount() >= 2
}

func (g *Game) isSeatActive(s *Seat) bool {
	return s.Occupied() && !s.SittingOut && s.Chips >= g.bigBlind
}

// ActiveSeatCount counts seats eligible to be dealt into the next hand.
func (g *Game) ActiveSeatCount() int {
	cnt := 0
	for _, s := range g.seats {
		if g.isSeatActive(s) {
			cnt++
		}
	}
	return cnt
}

func (g *Game) sitOutBrokeSeats() {
	for _, s := range g.seats {
		if !s.Occupied() {
			continue
		}
		if s.Chips < g.bigBlind && !s.SittingOut {
			s.SittingOut = true
		}
	}
}

// StartHand deals a new hand: reshuffles, marks eligible seats in hand,
// advances the button, posts blinds, deals hole cards and sets the first
// actor after the big blind. No-op unless CanStart holds.
func (g *Game) StartHand() {
	if !g.CanStart() {
		return
	}

	g.sitOutBrokeSeats()
	if g.ActiveSeatCount() < 2 {
		return
	}

	g.stage = StagePreFlop
	g.community = g.community[:0]
	g.sidePots = nil
	g.deck.Reset()
	g.deck.Shuffle(g.rng)

	for _, s := range g.seats {
		s.CurrentBet = 0
		s.TotalBetThisHand = 0
		s.InHand = false
		s.Folded = false
		s.AllIn = false
		if g.isSeatActive(s) {
			s.InHand = true
		}
	}

	if len(g.seats) > 0 {
		if newButton := g.nextInHandIndex(g.button + 1); newButton >= 0 {
			g.button = newButton
		}
	}

	g.postBlinds()
	g.dealHoleCards()

	sbPos := g.nextInHandIndex(g.button + 1)
	bbPos := g.nextInHandIndex(sbPos + 1)
	g.actingIndex = g.nextActiveIndex(bbPos + 1)
}

func (g *Game) postBlinds() {
	if len(g.seats) == 0 {
		return
	}

	sbPos := g.nextInHandIndex(g.button + 1)
	bbPos := g.nextInHandIndex(sbPos + 1)
	if sbPos < 0 || bbPos < 0 {
		return
	}

	sbSeat := g.seats[sbPos]
	sbAmount := min(g.smallBlind, sbSeat.Chips)
	sbSeat.Chips -= sbAmount
	sbSeat.CurrentBet = sbAmount
	sbSeat.TotalBetThisHand = sbAmount
	if sbSeat.Chips == 0 {
		sbSeat.AllIn = true
	}

	bbSeat := g.seats[bbPos]
	bbAmount := min(g.bigBlind, bbSeat.Chips)
	bbSeat.Chips -= bbAmount
	bbSeat.CurrentBet = bbAmount
	bbSeat.TotalBetThisHand = bbAmount
	if bbSeat.Chips == 0 {
		bbSeat.AllIn = true
	}

	g.lastBet = g.bigBlind
}

func (g *Game) dealHoleCards() {
	for _, s := range g.seats {
		if !s.InHand {
			continue
		}
		s.Hole[0] = g.deck.Draw()
		s.Hole[1] = g.deck.Draw()
	}
}

func (g *Game) dealCommunity(count int) {
	for i := 0; i < count; i++ {
		g.community = append(g.community, g.deck.Draw())
	}
}

// nextInHandIndex finds the next seat dealt into the hand, scanning from
// start and wrapping. Returns -1 when none qualifies.
func (g *Game) nextInHandIndex(start int) int {
	n := len(g.seats)
	if n == 0 {
		return -1
	}
	for offset := 0; offset < n; offset++ {
		idx := ((start+offset)%n + n) % n
		if g.seats[idx].InHand {
			return idx
		}
	}
	return -1
}

// nextActiveIndex finds the next seat that can still act, scanning from
// start and wrapping. Returns -1 when none qualifies.
func (g *Game) nextActiveIndex(start int) int {
	n := len(g.seats)
	if n == 0 {
		return -1
	}
	for offset := 0; offset < n; offset++ {
		idx := ((start+offset)%n + n) % n
		s := g.seats[idx]
		if !s.Occupied() || !s.InHand || s.Folded || s.AllIn {
			continue
		}
		return idx
	}
	return -1
}

// AdvanceStage sweeps the round's bets into side pots, deals the next
// street and hands the action to the first active seat after the button.
// From the river it runs the showdown instead and finishes the hand.
func (g *Game) AdvanceStage() {
	g.collectBetsToSidePots()

	switch g.stage {
	case StagePreFlop:
		g.stage = StageFlop
		g.dealCommunity(3)
	case StageFlop:
		g.stage = StageTurn
		g.dealCommunity(1)
	case StageTurn:
		g.stage = StageRiver
		g.dealCommunity(1)
	case StageRiver:
		g.stage = StageShowdown
		g.handleShowdown()
		g.FinishHand()
		return
	default:
		return
	}

	g.resetBetsForNewRound()
	g.actingIndex = g.nextActiveIndex(g.button + 1)
}

// collectBetsToSidePots sweeps every seat's current-round bet into the pot
// list. Bets are walked ascending by distinct level; each level forms one
// pot sized (level − previousLevel) × contributors, with partial
// contributions from seats between the two levels counted in. Folded seats
// fund pots but are never eligible to win them.
func (g *Game) collectBetsToSidePots() {
	type seatBet struct {
		amount int
		index  int
	}
	var bets []seatBet
	for i, s := range g.seats {
		if s.PlayerID < 0 || !s.InHand {
			continue
		}
		if s.CurrentBet > 0 {
			bets = append(bets, seatBet{s.CurrentBet, i})
		}
	}
	if len(bets) == 0 {
		return
	}

	sort.Slice(bets, func(i, j int) bool {
		if bets[i].amount != bets[j].amount {
			return bets[i].amount < bets[j].amount
		}
		return bets[i].index < bets[j].index
	})

	previousLevel := 0
	for _, b := range bets {
		currentLevel := b.amount
		if currentLevel <= previousLevel {
			continue
		}

		contribution := currentLevel - previousLevel
		var pot SidePot

		// Departing seats still fund the pots they bet into; only their
		// eligibility is lost once folded.
		for _, s := range g.seats {
			if s.PlayerID < 0 || !s.InHand {
				continue
			}
			if s.CurrentBet >= currentLevel {
				pot.Amount += contribution
				if !s.Folded {
					pot.Eligible = append(pot.Eligible, s.PlayerID)
				}
			} else if s.CurrentBet > previousLevel {
				pot.Amount += s.CurrentBet - previousLevel
				if !s.Folded {
					pot.Eligible = append(pot.Eligible, s.PlayerID)
				}
			}
		}

		if pot.Amount > 0 && len(pot.Eligible) > 0 {
			g.sidePots = append(g.sidePots, pot)
		}
		previousLevel = currentLevel
	}

	for _, s := range g.seats {
		s.CurrentBet = 0
	}
}

func (g *Game) resetBetsForNewRound() {
	g.lastBet = 0
	for _, s := range g.seats {
		s.CurrentBet = 0
	}
}

// AdvanceTurn moves the action to the next eligible seat, or advances the
// stage once every non-all-in contestant has matched the current bet.
func (g *Game) AdvanceTurn() {
	if g.stage == StageWaiting || len(g.seats) == 0 {
		return
	}

	if g.allBetsMatched() {
		g.AdvanceStage()
		return
	}

	next := g.nextActiveIndex(g.actingIndex + 1)
	if next < 0 {
		g.AdvanceStage()
		return
	}
	g.actingIndex = next
}

func (g *Game) allBetsMatched() bool {
	activeCount := 0
	for _, s := range g.seats {
		if !s.Occupied() || !s.InHand || s.Folded || s.AllIn {
			continue
		}
		activeCount++
		if s.CurrentBet != g.lastBet {
			return false
		}
	}
	return activeCount > 0
}

// HandleAction applies a betting action for the given player. Actions out
// of turn, from seats that cannot act, or while no hand is running are
// ignored so stale client messages cause no harm. On an idle table any
// action simply tries to start the next hand.
func (g *Game) HandleAction(playerID int, action Action, amount int) {
	if g.stage == StageWaiting {
		if g.CanStart() {
			g.StartHand()
		}
		return
	}

	seat := g.SeatByPlayer(playerID)
	if seat == nil {
		return
	}
	if len(g.seats) == 0 || g.actingIndex < 0 || g.actingIndex >= len(g.seats) {
		return
	}
	if g.seats[g.actingIndex].PlayerID != playerID {
		return
	}
	if !seat.CanAct() {
		return
	}

	toCall := max(0, g.lastBet-seat.CurrentBet)

	switch action {
	case ActionCheckCall:
		pay := min(seat.Chips, toCall)
		seat.Chips -= pay
		seat.CurrentBet += pay
		seat.TotalBetThisHand += pay
		if seat.Chips == 0 {
			seat.AllIn = true
		}
	case ActionBetRaise:
		minRaise := g.lastBet + g.bigBlind
		totalBet := max(amount, minRaise)
		pay := min(totalBet-seat.CurrentBet, seat.Chips)
		seat.Chips -= pay
		seat.CurrentBet += pay
		seat.TotalBetThisHand += pay
		g.lastBet = seat.CurrentBet
		if seat.Chips == 0 {
			seat.AllIn = true
		}
	default: // fold
		seat.Folded = true
	}

	g.ResolveIfNeeded()
	if g.stage != StageWaiting {
		g.AdvanceTurn()
	}
}

// ProcessAutoModePlayer acts for the seat on turn when it is in auto mode
// or leaving: a free check is taken silently, anything that costs chips is
// folded. Driven by the room tick so an absent player never stalls the
// round.
func (g *Game) ProcessAutoModePlayer() {
	if g.stage == StageWaiting || len(g.seats) == 0 {
		return
	}
	if g.actingIndex < 0 || g.actingIndex >= len(g.seats) {
		g.actingIndex = 0
	}

	seat := g.seats[g.actingIndex]
	if !seat.CanAct() {
		return
	}

	if seat.AutoMode || seat.PendingLeave {
		toCall := max(0, g.lastBet-seat.CurrentBet)
		if toCall > 0 {
			seat.Folded = true
		}
		g.ResolveIfNeeded()
		if g.stage != StageWaiting {
			g.AdvanceTurn()
		}
	}
}

// ResolveIfNeeded ends the hand early when at most one contestant remains.
// With a single player left the whole pot is awarded without evaluating
// anyone's hand; the result record still lists every dealt hand. At
// showdown with two or more contestants the pots are distributed normally.
func (g *Game) ResolveIfNeeded() {
	aliveIdx := -1
	aliveCnt := 0
	for i, s := range g.seats {
		if !s.Occupied() || !s.InHand || s.Folded {
			continue
		}
		aliveCnt++
		aliveIdx = i
	}

	if aliveCnt == 0 {
		g.FinishHand()
		return
	}

	if aliveCnt == 1 {
		g.collectBetsToSidePots()
		totalWin := g.TotalPot()
		winner := g.seats[aliveIdx]
		winner.Chips += totalWin
		g.recordHandResult(totalWin, map[int]int{winner.PlayerID: totalWin})
		g.sidePots = nil
		g.FinishHand()
		return
	}

	// Everyone still contesting is all in: no seat can act, so run the
	// board out street by street and settle the pots. Without this the
	// hand would sit on a street forever with no actor to drive it.
	if g.stage != StageWaiting && g.nextActiveIndex(0) < 0 {
		for g.stage != StageWaiting {
			g.AdvanceStage()
		}
		return
	}

	if g.stage == StageShowdown {
		g.handleShowdown()
		g.FinishHand()
	}
}

func (g *Game) handleShowdown() {
	g.collectBetsToSidePots()
	g.distributePots()
}

// distributePots settles each pot independently: the best evaluated hand
// among the pot's eligible, unfolded contestants wins; exact ties split the
// amount, with the indivisible remainder going to the tied winner seated
// closest after the button.
func (g *Game) distributePots() {
	totalPot := 0
	winnings := make(map[int]int)

	for pi := range g.sidePots {
		pot := &g.sidePots[pi]
		if pot.Amount <= 0 || len(pot.Eligible) == 0 {
			continue
		}
		totalPot += pot.Amount

		bestScore := -1
		var winners []int
		for _, pid := range pot.Eligible {
			seat := g.SeatByPlayer(pid)
			if seat == nil || seat.Folded {
				continue
			}
			sc := g.evaluateSeat(seat)
			if sc > bestScore {
				bestScore = sc
				winners = winners[:0]
				winners = append(winners, pid)
			} else if sc == bestScore {
				winners = append(winners, pid)
			}
		}
		if len(winners) == 0 {
			continue
		}

		sort.Slice(winners, func(i, j int) bool {
			return g.buttonDistance(winners[i]) < g.buttonDistance(winners[j])
		})

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for wi, pid := range winners {
			gain := share
			if wi == 0 {
				gain += remainder
			}
			if seat := g.SeatByPlayer(pid); seat != nil {
				seat.Chips += gain
				winnings[pid] += gain
			}
		}
		pot.Amount = 0
	}
	g.sidePots = nil

	g.recordHandResult(totalPot, winnings)
}

// buttonDistance ranks a player's seat by how soon it acts after the
// button; the seat immediately after the button is closest.
func (g *Game) buttonDistance(playerID int) int {
	n := len(g.seats)
	for i, s := range g.seats {
		if s.PlayerID == playerID {
			return ((i-g.button-1)%n + n) % n
		}
	}
	return n
}

func (g *Game) evaluateSeat(seat *Seat) int {
	var hand [7]cards.Card
	hand[0] = seat.Hole[0]
	hand[1] = seat.Hole[1]
	for i := 0; i < len(g.community) && i < 5; i++ {
		hand[2+i] = g.community[i]
	}
	return Evaluate(hand)
}

func (g *Game) recordHandResult(totalPot int, winnings map[int]int) {
	g.lastResult.Clear()
	g.lastResult.TotalPot = totalPot
	g.lastResult.Community = append([]cards.Card(nil), g.community...)
	for _, s := range g.seats {
		if !s.InHand {
			continue
		}
		pr := PlayerHandResult{
			PlayerID: s.PlayerID,
			Folded:   s.Folded,
			ChipsWon: winnings[s.PlayerID],
			Hole:     s.Hole,
		}
		if !s.Folded {
			pr.HandRank = g.evaluateSeat(s)
		}
		g.lastResult.Players = append(g.lastResult.Players, pr)
	}
	g.hasPendingResult = true
}

// HasPendingResult reports whether a finished hand's result is waiting to
// be broadcast.
func (g *Game) HasPendingResult() bool { return g.hasPendingResult }

// TakeHandResult returns the pending result and clears it; the record is a
// one-shot publish, consumed exactly once.
func (g *Game) TakeHandResult() (HandResult, bool) {
	if !g.hasPendingResult {
		return HandResult{}, false
	}
	g.hasPendingResult = false
	return g.lastResult, true
}

// FinishHand returns the table to Waiting and clears all per-hand state.
// Seats, chips and identity persist.
func (g *Game) FinishHand() {
	g.stage = StageWaiting
	g.community = g.community[:0]
	g.sidePots = nil
	g.lastBet = 0

	for _, s := range g.seats {
		s.InHand = false
		s.Folded = false
		s.AllIn = false
		s.CurrentBet = 0
		s.TotalBetThisHand = 0
	}
}

// SitDown seats a player at the lowest free seat index at or above the
// hint. New seats start broke and sitting out until a buy-in. Returns the
// assigned index, or -1 if the player is already seated.
func (g *Game) SitDown(playerID, seatIdxHint int) int {
	if g.SeatByPlayer(playerID) != nil {
		return -1
	}

	if seatIdxHint < 0 {
		seatIdxHint = 0
	}
	for g.SeatByIndex(seatIdxHint) != nil {
		seatIdxHint++
	}

	g.seats = append(g.seats, &Seat{
		Index:      seatIdxHint,
		PlayerID:   playerID,
		SittingOut: true,
	})
	sort.Slice(g.seats, func(i, j int) bool {
		return g.seats[i].Index < g.seats[j].Index
	})

	return seatIdxHint
}

// BuyIn adds chips to a seated player. Refused below the configured minimum
// or while the seat is dealt into a hand. A seat funded past the big blind
// stops sitting out.
func (g *Game) BuyIn(playerID, amount int) BuyInResult {
	seat := g.SeatByPlayer(playerID)
	if seat == nil {
		return BuyInPlayerNotFound
	}
	if amount < g.minBuyIn {
		return BuyInBelowMinimum
	}
	if seat.InHand {
		return BuyInAlreadyInHand
	}

	seat.Chips += amount
	if seat.Chips >= g.bigBlind && seat.SittingOut {
		seat.SittingOut = false
	}
	return BuyInSuccess
}

// StandUp sits the player out from the next hand on.
func (g *Game) StandUp(playerID int) bool {
	seat := g.SeatByPlayer(playerID)
	if seat == nil {
		return false
	}
	seat.SittingOut = true
	return true
}

// SitBack rejoins the action; requires chips covering the big blind.
func (g *Game) SitBack(playerID int) bool {
	seat := g.SeatByPlayer(playerID)
	if seat == nil {
		return false
	}
	if seat.Chips < g.bigBlind {
		return false
	}
	seat.SittingOut = false
	return true
}

// MarkPendingLeave flags a departing player: the seat auto-folds or checks
// until the hand ends, then becomes removable. In-flight pot math stays
// intact.
func (g *Game) MarkPendingLeave(playerID int) {
	if seat := g.SeatByPlayer(playerID); seat != nil {
		seat.PendingLeave = true
		seat.AutoMode = true
	}
}

// RemovePendingLeavers purges vacated seats and departed players whose hand
// has concluded, then renormalizes the button and acting positions.
func (g *Game) RemovePendingLeavers() {
	kept := g.seats[:0]
	for _, s := range g.seats {
		if s.PlayerID < 0 || (s.PendingLeave && !s.InHand) {
			continue
		}
		kept = append(kept, s)
	}
	g.seats = kept

	if len(g.seats) == 0 {
		g.button = 0
		g.actingIndex = 0
	} else {
		g.button %= len(g.seats)
		if g.actingIndex < 0 {
			g.actingIndex = 0
		}
		g.actingIndex %= len(g.seats)
	}
}

// PlayerChips returns the table chips of a seated player, 0 otherwise.
func (g *Game) PlayerChips(playerID int) int {
	if seat := g.SeatByPlayer(playerID); seat != nil {
		return seat.Chips
	}
	return 0
}

// CashOut zeroes and returns a seat's table chips. Refused mid-hand so a
// live pot can never be drained.
func (g *Game) CashOut(playerID int) int {
	seat := g.SeatByPlayer(playerID)
	if seat == nil {
		return 0
	}
	if seat.InHand {
		return 0
	}
	chips := seat.Chips
	seat.Chips = 0
	seat.SittingOut = true
	return chips
}

// SeatByPlayer finds the seat held by a player id, or nil.
func (g *Game) SeatByPlayer(playerID int) *Seat {
	for _, s := range g.seats {
		if s.PlayerID == playerID {
			return s
		}
	}
	return nil
}

// SeatByIndex finds the seat with the given stable index, or nil.
func (g *Game) SeatByIndex(seatIdx int) *Seat {
	for _, s := range g.seats {
		if s.Index == seatIdx {
			return s
		}
	}
	return nil
}

// ActingPlayerID returns the player whose turn it is, or -1.
func (g *Game) ActingPlayerID() int {
	if g.stage == StageWaiting || len(g.seats) == 0 ||
		g.actingIndex < 0 || g.actingIndex >= len(g.seats) {
		return -1
	}
	seat := g.seats[g.actingIndex]
	if !seat.Folded && seat.InHand {
		return seat.PlayerID
	}
	return -1
}

// TotalPot sums the swept pots plus the bets still sitting on the seats.
func (g *Game) TotalPot() int {
	total := 0
	for _, pot := range g.sidePots {
		total += pot.Amount
	}
	for _, s := range g.seats {
		total += s.CurrentBet
	}
	return total
}

// Seats exposes the seat list for snapshots; callers must hold the room's
// read lock and must not mutate.
func (g *Game) Seats() []*Seat { return g.seats }

// Community returns the dealt community cards.
func (g *Game) Community() []cards.Card { return g.community }

// SidePots returns the swept pots.
func (g *Game) SidePots() []SidePot { return g.sidePots }

// WriteTable serializes the full table view. Hole cards are included only
// for the viewer's own seat, or for every unfolded hand at showdown.
func (g *Game) WriteTable(p *wire.Packet, viewerPlayerID int) {
	p.WriteUint8(uint8(g.stage))
	p.WriteInt32(int32(g.TotalPot()))
	p.WriteInt32(int32(g.ActingPlayerID()))
	p.WriteInt32(int32(g.lastBet))
	p.WriteInt32(int32(g.smallBlind))
	p.WriteInt32(int32(g.bigBlind))

	p.WriteUint8(uint8(len(g.sidePots)))
	for _, pot := range g.sidePots {
		p.WriteInt32(int32(pot.Amount))
		p.WriteUint8(uint8(len(pot.Eligible)))
		for _, pid := range pot.Eligible {
			p.WriteInt32(int32(pid))
		}
	}

	p.WriteUint8(uint8(len(g.community)))
	for _, c := range g.community {
		writeCard(p, c)
	}

	p.WriteUint8(uint8(len(g.seats)))
	for _, s := range g.seats {
		showHole := s.PlayerID == viewerPlayerID ||
			(g.stage == StageShowdown && s.InHand && !s.Folded)
		s.Write(p, showHole)
	}
}

// ReadTable rebuilds table state from a snapshot written by WriteTable.
func (g *Game) ReadTable(p *wire.Packet) {
	g.stage = Stage(p.ReadUint8())
	_ = p.ReadInt32() // total pot, derived
	actingPid := int(p.ReadInt32())
	g.lastBet = int(p.ReadInt32())
	g.smallBlind = int(p.ReadInt32())
	g.bigBlind = int(p.ReadInt32())

	potCount := int(p.ReadUint8())
	g.sidePots = nil
	for i := 0; i < potCount; i++ {
		var pot SidePot
		pot.Amount = int(p.ReadInt32())
		eligibleCount := int(p.ReadUint8())
		for j := 0; j < eligibleCount; j++ {
			pot.Eligible = append(pot.Eligible, int(p.ReadInt32()))
		}
		g.sidePots = append(g.sidePots, pot)
	}

	communityCount := int(p.ReadUint8())
	g.community = g.community[:0]
	for i := 0; i < communityCount; i++ {
		g.community = append(g.community, readCard(p))
	}

	seatCount := int(p.ReadUint8())
	g.seats = nil
	for i := 0; i < seatCount; i++ {
		seat := &Seat{}
		seat.Read(p)
		g.seats = append(g.seats, seat)
		if seat.PlayerID == actingPid {
			g.actingIndex = len(g.seats) - 1
		}
	}
}
