// Copyright Trident Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package types

import "github.com/trident-lang/trident/pkg/source"

// diagCode maps one of this package's typed failure modes to the stable
// diagnostic code shown to the user.
func diagCode(err error) string {
	switch err.(type) {
	case *TypeMismatch:
		return "TypeMismatch"
	case *UndefinedIdentifier:
		return "UndefinedIdentifier"
	case *WrongArity:
		return "WrongArity"
	case *ImmutableAssignment:
		return "ImmutableAssignment"
	case *RecursiveCall:
		return "RecursiveCall"
	case *NonExhaustiveMatch:
		return "NonExhaustiveMatch"
	case *MissingBoundAnnotation:
		return "MissingBoundAnnotation"
	case *PureFunctionViolation:
		return "PureFunctionViolation"
	case *AmbiguousGenericCall:
		return "AmbiguousGenericCall"
	case *IntrinsicOutsideStdLib:
		return "IntrinsicOutsideStdLib"
	default:
		return "TypeError"
	}
}

func diagFromErr(err error, span source.Span) source.Diagnostic {
	return source.Diagnostic{Severity: source.SeverityError, Code: diagCode(err), Message: err.Error(), Span: span}
}
