// SPDX-License-Identifier: MIT

package hill

// PanicPadLetterInvalid_TestOnly exposes the WithPadLetter panic message to hill_test.
const PanicPadLetterInvalid_TestOnly = panicPadLetterInvalid
