package metadomain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

type Action struct {
	ActionType string      `json:"action_type"`
	Value      json.Number `json:"value"`
}

// ActionTypeMapping liga uma coluna da tabela a um action_type da lista "actions"
type ActionTypeMapping struct {
	Column     string
	ActionType string
}

const (
	OutboundClickActionType = "outbound_click"
	ThruPlayActionType      = "video_view"
)

var actionTypeMappings = [...]ActionTypeMapping{
	{Column: domain.ColumnLinkClicks, ActionType: "link_click"},
	{Column: domain.Column3SecPlays, ActionType: "video_view"},
	{Column: domain.ColumnEngagement, ActionType: "post_engagement"},
	{Column: domain.ColumnReaction, ActionType: "post_reaction"},
	{Column: domain.ColumnComments, ActionType: "comment"},
	{Column: domain.ColumnLead, ActionType: "lead"},
	{Column: domain.ColumnShare, ActionType: "post"},
	{Column: domain.ColumnMessConversation, ActionType: "onsite_conversion.messaging_conversation_started_7d"},
}

// ActionTypeMappings retorna uma cópia do mapeamento fixo coluna -> action_type
func ActionTypeMappings() []ActionTypeMapping {
	mappings := actionTypeMappings
	return mappings[:]
}

// ExtractAction retorna o valor da primeira ação com o action_type informado.
// Lista nil, vazia ou sem correspondência retorna 0.
func ExtractAction(actions []Action, actionType string) float64 {
	for _, action := range actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := decimal.NewFromString(action.Value.String())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value.String(),
				"error":        err.Error(),
			}).Warn("insights: error converting action value to float")
			return 0
		}

		return value.InexactFloat64()
	}

	return 0
}
