package monitoring

import (
	"testing"
)

func Test_getSegmentName(t *testing.T) {
	tests := []struct {
		name         string
		fullFuncName string
		want         string
	}{
		{
			name:         "pointer receiver method",
			fullFuncName: "bitbucket.org/Amartha/go-fp-aggregation/internal/services.(*sync).SyncInstitutions",
			want:         "services.sync.SyncInstitutions",
		},
		{
			name:         "value receiver method",
			fullFuncName: "bitbucket.org/Amartha/go-fp-aggregation/internal/providers/saltedge.Client.GetAccounts",
			want:         "saltedge.Client.GetAccounts",
		},
		{
			name:         "plain function",
			fullFuncName: "bitbucket.org/Amartha/go-fp-aggregation/internal/repositories.buildListTransactionQuery",
			want:         "repositories.buildListTransactionQuery",
		},
		{
			name:         "stdlib method",
			fullFuncName: "net/http.(*Server).Serve",
			want:         "http.Server.Serve",
		},
		{
			name:         "no package path",
			fullFuncName: "main.main",
			want:         "main.main",
		},
		{
			name:         "runtime func",
			fullFuncName: "runtime.goexit",
			want:         "runtime.goexit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getSegmentName(tt.fullFuncName); got != tt.want {
				t.Errorf("getSegmentName() = %v, want %v", got, tt.want)
			}
		})
	}
}
