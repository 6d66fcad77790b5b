package service

import (
	"github.com/shopspring/decimal"

	"github.com/manas360/booking-service/internal/model"
)

// YieldRates are the per-kind revenue attributions in whole rupees. Group
// revenue scales with booked participants; VR and individual are flat.
type YieldRates struct {
	Group      int64
	VR         int64
	Individual int64
}

// ComputeYield projects bookable revenue over the given sessions and splits
// it between therapist and platform. The payout is floored, the platform
// share is the exact remainder, so payout + share always equals the total.
func ComputeYield(sessions []*model.Session, rates YieldRates, payoutFraction float64) model.YieldReport {
	var rep model.YieldReport
	for _, s := range sessions {
		switch s.Kind {
		case model.KindGroup:
			rep.GroupSessions++
			if s.Group != nil {
				rep.TotalRevenue += int64(s.Group.CurrentParticipants) * rates.Group
			}
		case model.KindVR:
			rep.VRSessions++
			rep.TotalRevenue += rates.VR
		default:
			rep.IndividualSessions++
			rep.TotalRevenue += rates.Individual
		}
	}

	total := decimal.NewFromInt(rep.TotalRevenue)
	frac := decimal.NewFromFloat(payoutFraction)
	rep.TherapistPayout = total.Mul(frac).Floor().IntPart()
	rep.PlatformShare = rep.TotalRevenue - rep.TherapistPayout
	return rep
}
