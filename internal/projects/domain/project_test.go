package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectJSON_SiteWireShape(t *testing.T) {
	p := Project{
		ID:      "1700000000000",
		Name:    "Landing",
		Date:    "18/10/2026",
		Input:   SiteInput{Description: "Loja de roupas"},
		Content: Content{Text: "# Prompt"},
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "site", got["type"])
	assert.Equal(t, "# Prompt", got["prompt"])
	assert.Equal(t, map[string]any{"description": "Loja de roupas"}, got["formData"])
	assert.NotContains(t, got, "clients")
	assert.NotContains(t, got, "structuredData")
}

func TestProjectJSON_RoundTripPerKind(t *testing.T) {
	cases := []Project{
		{ID: "1", Name: "a", Date: "01/01/2026", Input: SiteInput{Description: "d", Niche: "n"}, Content: Content{Text: "x"}},
		{ID: "2", Name: "b", Date: "01/01/2026", Input: ContractInput{ContractType: "Prestação", Terms: "30 dias"}, Content: Content{Text: "y"}},
		{ID: "3", Name: "c", Date: "01/01/2026", Input: ApproachInput{Target: "Dentistas", Tone: "formal"}, Content: Content{Text: "z"}},
		{ID: "4", Name: "d", Date: "01/01/2026", Input: ClientSearchInput{Niche: "Moda", Location: "SP"},
			Content: Content{Clients: []Client{{BusinessName: "Boutique", Niche: "Moda"}}},
			StructuredData: json.RawMessage(`{"score":1}`)},
	}
	for _, want := range cases {
		t.Run(string(want.Kind()), func(t *testing.T) {
			raw, err := json.Marshal(want)
			require.NoError(t, err)

			var got Project
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestProjectJSON_MissingTypeIsSite(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":"9","name":"Old","date":"01/01/2024","prompt":"hi","formData":{"niche":"Moda"}}`), &p))

	assert.Equal(t, KindSite, p.Kind())
	assert.Equal(t, "hi", p.Content.Text)
	site, ok := p.Input.(SiteInput)
	require.True(t, ok)
	assert.Equal(t, "Moda", site.Subject())
}

func TestProjectJSON_LegacyClientList(t *testing.T) {
	t.Run("clients serialized in prompt", func(t *testing.T) {
		var p Project
		doc := `{"id":"5","name":"L","date":"01/01/2025","type":"client_list",
			"prompt":"[{\"businessName\":\"Tech\",\"niche\":\"TI\",\"location\":\"SC\",\"contactName\":\"João\",\"email\":\"j@t.com\",\"instagram\":\"@t\"}]",
			"formData":{"niche":"TI","extra":"ignored"}}`
		require.NoError(t, json.Unmarshal([]byte(doc), &p))

		require.Len(t, p.Content.Clients, 1)
		assert.Equal(t, "Tech", p.Content.Clients[0].BusinessName)
		assert.Equal(t, ClientSearchInput{Niche: "TI"}, p.Input)
	})

	t.Run("malformed prompt yields empty list", func(t *testing.T) {
		var p Project
		require.NoError(t, json.Unmarshal([]byte(`{"id":"6","name":"L","date":"","type":"client_list","prompt":"not json","formData":{}}`), &p))
		assert.NotNil(t, p.Content.Clients)
		assert.Empty(t, p.Content.Clients)
	})
}

func TestProjectJSON_NonStringFormDataIgnored(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","name":"x","date":"","type":"approach","prompt":"m","formData":{"target":"Lojas","tone":3}}`), &p))
	assert.Equal(t, ApproachInput{Target: "Lojas"}, p.Input)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Client_List ")
	require.NoError(t, err)
	assert.Equal(t, KindClientList, k)

	_, err = ParseKind("poem")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestKindLabelsAndPersistable(t *testing.T) {
	assert.Equal(t, "Site", KindSite.Label())
	assert.Equal(t, "Contrato", KindContract.Label())
	assert.Equal(t, "Lista", KindClientList.Label())
	assert.Equal(t, "Abordagem", KindApproach.Label())
	assert.Equal(t, "Site", Kind("").Label())

	assert.False(t, KindContacts.Persistable())
	assert.True(t, KindApproach.Persistable())
	assert.True(t, KindContacts.Structured())
	assert.False(t, KindContract.Structured())
}

func TestMergeFields(t *testing.T) {
	in := ContractInput{ContractType: "Locação", Clauses: "multa"}
	out := MergeFields(in, map[string]string{"clauses": "", "terms": "12 meses", "bogus": "x"})
	assert.Equal(t, ContractInput{ContractType: "Locação", Terms: "12 meses"}, out)
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	assert.Equal(t, "1700000000000", NewID(now, nil))

	taken := map[string]bool{"1700000000000": true, "1700000000001": true}
	assert.Equal(t, "1700000000002", NewID(now, func(id string) bool { return taken[id] }))
}

func TestDates(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2026", FormatDate(ts))
	assert.Equal(t, "Moda - 05/03/2026", DefaultClientListName("Moda", ts))
}
