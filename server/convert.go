// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"time"

	v1 "github.com/privacyvote/daogov/api/v1"
	"github.com/privacyvote/daogov/mockdata"
	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/wallet"
	"github.com/shopspring/decimal"
)

func convertRoute(r nav.Route) v1.Route {
	return v1.Route{
		Screen:     string(r.Screen()),
		Path:       nav.PathFor(r),
		ProposalID: nav.ProposalID(r),
		ProjectID:  nav.ProjectID(r),
	}
}

func convertView(v nav.View) v1.View {
	return v1.View{
		Type:  v1.ViewT(v.Kind),
		Route: convertRoute(v.Route),
	}
}

func convertWallet(w wallet.Wallet) v1.Wallet {
	return v1.Wallet{
		Address:          w.Address,
		Balance:          w.Balance.String(),
		SecondaryBalance: w.SecondaryBalance.String(),
		Network:          string(w.Network),
		Kind:             string(w.Kind),
	}
}

func convertConnection(c store.ConnectionDetails) v1.Connection {
	return v1.Connection{
		Kind:        string(c.Kind),
		ConnectedAt: c.ConnectedAt.Unix(),
		SessionHash: c.SessionHash,
	}
}

func convertSession(sn store.Snapshot, v nav.View) v1.SessionReply {
	r := v1.SessionReply{
		Guest:                      sn.Guest,
		ShowWalletSelector:         sn.ShowWalletSelector,
		ShowConnectionConfirmation: sn.ShowConnectionConfirmation,
		ProofStatus:                string(sn.ProofStatus),
		Proof:                      sn.Proof,
		ProofError:                 sn.ProofError,
		Votes:                      sn.Votes,
		Projects:                   sn.Projects,
		View:                       convertView(v),
	}
	if sn.Wallet != nil {
		w := convertWallet(*sn.Wallet)
		r.Wallet = &w
	}
	if sn.Connection != nil {
		c := convertConnection(*sn.Connection)
		r.Connection = &c
	}
	return r
}

func convertTokens(m map[store.Token]decimal.Decimal) map[string]string {
	tokens := make(map[string]string, len(m))
	for k, v := range m {
		tokens[string(k)] = v.String()
	}
	return tokens
}

func convertProposal(p store.Proposal) v1.Proposal {
	var phase string
	if p.Phase != nil {
		phase = string(*p.Phase)
	}
	var results *v1.Results
	if p.Results != nil {
		results = &v1.Results{
			Yes:     p.Results.Yes,
			No:      p.Results.No,
			Abstain: p.Results.Abstain,
		}
	}
	return v1.Proposal{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Creator:           p.Creator,
		CreatedAt:         p.CreatedAt.Unix(),
		Deadline:          p.Deadline.Unix(),
		Status:            string(p.Status),
		Phase:             phase,
		VoteCount:         p.VoteCount,
		ParticipationRate: p.ParticipationRate,
		EligibleVoters:    p.EligibleVoters,
		RequiredTokens:    convertTokens(p.RequiredTokens),
		TokenType:         string(p.TokenType),
		Threshold:         p.Threshold,
		Results:           results,
	}
}

func convertProposals(ps []store.Proposal) []v1.Proposal {
	r := make([]v1.Proposal, 0, len(ps))
	for _, p := range ps {
		r = append(r, convertProposal(p))
	}
	return r
}

// convertProposalInput converts a new proposal request into the store
// input. A v1.UserErrorReply is returned for amounts that cannot be
// parsed. All other fields are verified by the store.
func convertProposalInput(np v1.NewProposal) (*store.ProposalInput, error) {
	var tokens map[store.Token]decimal.Decimal
	if len(np.RequiredTokens) > 0 {
		tokens = make(map[store.Token]decimal.Decimal, len(np.RequiredTokens))
		for k, v := range np.RequiredTokens {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, v1.UserErrorReply{
					ErrorCode:    v1.ErrorCodeInputInvalid,
					ErrorContext: "invalid requiredtokens amount for " + k,
				}
			}
			tokens[store.Token(k)] = d
		}
	}
	var deadline time.Time
	if np.Deadline != 0 {
		deadline = time.Unix(np.Deadline, 0)
	}
	return &store.ProposalInput{
		Title:          np.Title,
		Description:    np.Description,
		Creator:        np.Creator,
		Deadline:       deadline,
		RequiredTokens: tokens,
		TokenType:      store.Token(np.TokenType),
		Threshold:      np.Threshold,
		EligibleVoters: np.EligibleVoters,
	}, nil
}

func convertVote(v store.Vote) v1.Vote {
	return v1.Vote{
		ProposalID:  v.ProposalID,
		Voter:       v.Voter,
		Choice:      string(v.Choice),
		Commitment:  v.Commitment,
		Revealed:    v.Revealed,
		Timestamp:   v.Timestamp.Unix(),
		ZKProof:     v.ZKProof,
		TokenAmount: v.TokenAmount.String(),
		TokenType:   string(v.TokenType),
	}
}

func convertSocialLinks(s store.SocialLinks) v1.SocialLinks {
	return v1.SocialLinks{
		Website: s.Website,
		Twitter: s.Twitter,
		Discord: s.Discord,
		GitHub:  s.GitHub,
	}
}

func convertTemporaryProject(p store.TemporaryProject) v1.TemporaryProject {
	var social *v1.SocialLinks
	if p.Social != nil {
		s := convertSocialLinks(*p.Social)
		social = &s
	}
	return v1.TemporaryProject{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Type:            string(p.Type),
		Category:        string(p.Category),
		Creator:         p.Creator,
		CreatedAt:       p.CreatedAt.Unix(),
		MemberCount:     p.MemberCount,
		ProposalCount:   p.ProposalCount,
		ActiveVotes:     p.ActiveVotes,
		GovernanceToken: p.GovernanceToken,
		Social:          social,
		HasDetailedInfo: p.HasDetailedInfo,
	}
}

func convertCatalogProject(p mockdata.CatalogProject) v1.CatalogProject {
	return v1.CatalogProject{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Type:            string(p.Type),
		Category:        string(p.Category),
		MemberCount:     p.MemberCount,
		ProposalCount:   p.ProposalCount,
		ActiveVotes:     p.ActiveVotes,
		GovernanceToken: p.GovernanceToken,
		Treasury:        p.Treasury.String(),
		Social:          convertSocialLinks(p.Social),
	}
}

func convertProjectInput(np v1.NewProject) store.ProjectInput {
	var social *store.SocialLinks
	if np.Social != nil {
		social = &store.SocialLinks{
			Website: np.Social.Website,
			Twitter: np.Social.Twitter,
			Discord: np.Social.Discord,
			GitHub:  np.Social.GitHub,
		}
	}
	return store.ProjectInput{
		Name:            np.Name,
		Description:     np.Description,
		Type:            store.ProjectType(np.Type),
		Category:        store.Category(np.Category),
		Creator:         np.Creator,
		GovernanceToken: np.GovernanceToken,
		Social:          social,
	}
}
