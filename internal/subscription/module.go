// Copyright 2024 clipflow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package subscription

import (
	"github.com/clipflow/clipflow/internal/subscription/internal/domain"
	"github.com/clipflow/clipflow/internal/subscription/internal/service"
	"github.com/clipflow/clipflow/internal/subscription/internal/web"
)

type Handler = web.Handler

type Service = service.SubscriptionService

type Channel = domain.Channel

type Module struct {
	Hdl *Handler
	Svc Service
}
